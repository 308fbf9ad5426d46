package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta a cliente.
// Version es el contador de concurrencia optimista de la cabecera.
type Sale struct {
	ID          string
	Date        time.Time
	DocumentRef string // comprobante o recibo asociado
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SaleLine línea de una venta (clave compuesta sale_id + record_id).
// UnitPrice es la foto del precio vigente del disco al insertar la línea o al
// cambiar su cantidad; nunca se recalcula retroactivamente.
type SaleLine struct {
	SaleID    string
	RecordID  string
	Quantity  int
	UnitPrice decimal.Decimal
}
