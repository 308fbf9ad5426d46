package repository

import "github.com/jhoicas/vinilos-api/internal/domain/entity"

// ShipmentRepository define el puerto de persistencia para ingresos y sus líneas.
// Las líneas solo se crean/actualizan/borran como efecto del ciclo de vida de su
// cabecera, dentro de la misma transacción.
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	// UpdateHeader actualiza la cabecera con check optimista: exige la versión
	// cargada por el cliente e incrementa version. ErrConflict si otro escritor
	// la modificó; ErrNotFound si la cabecera ya no existe.
	UpdateHeader(shipment *entity.Shipment) error
	Delete(id string) error
	GetByID(id string) (*entity.Shipment, error)
	List(limit, offset int) ([]*entity.Shipment, error)

	GetLines(shipmentID string) ([]*entity.ShipmentLine, error)
	InsertLine(line *entity.ShipmentLine) error
	UpdateLineQuantity(shipmentID, recordID string, quantity int) error
	DeleteLine(shipmentID, recordID string) error
	DeleteLines(shipmentID string) error
}
