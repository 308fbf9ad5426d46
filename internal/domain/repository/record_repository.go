package repository

import "github.com/jhoicas/vinilos-api/internal/domain/entity"

// RecordRepository define el puerto de persistencia para discos.
// GetForUpdate y UpdateStock son el camino exclusivo de mutación de stock:
// la lectura bloquea la fila (SELECT FOR UPDATE) para que ningún otro ajuste
// al mismo disco se intercale entre leer la cantidad y escribirla.
type RecordRepository interface {
	Create(record *entity.Record) error
	GetByID(id string) (*entity.Record, error)
	// GetForUpdate obtiene el disco bloqueando la fila; nil si no existe.
	GetForUpdate(id string) (*entity.Record, error)
	// UpdateStock persiste cantidad y estado juntos (misma escritura).
	UpdateStock(id string, quantity int, statusID int) error
	// Update actualiza los campos descriptivos y el precio; no toca stock ni estado.
	Update(record *entity.Record) error
	List(limit, offset int) ([]*entity.Record, error)
	Delete(id string) error
}
