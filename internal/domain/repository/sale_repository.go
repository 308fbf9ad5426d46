package repository

import "github.com/jhoicas/vinilos-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
// Misma forma que ShipmentRepository; la línea además lleva la foto de precio.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// UpdateHeader actualiza la cabecera con check optimista de versión.
	UpdateHeader(sale *entity.Sale) error
	Delete(id string) error
	GetByID(id string) (*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)

	GetLines(saleID string) ([]*entity.SaleLine, error)
	InsertLine(line *entity.SaleLine) error
	// UpdateLine actualiza cantidad y re-fotografía el precio unitario.
	UpdateLine(line *entity.SaleLine) error
	DeleteLine(saleID, recordID string) error
	DeleteLines(saleID string) error
}
