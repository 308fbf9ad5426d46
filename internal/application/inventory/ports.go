package inventory

import (
	"context"

	"github.com/jhoicas/vinilos-api/internal/domain/repository"
)

// ShipmentTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que cabecera, líneas y ajustes de
// stock de un ingreso se confirmen como una sola unidad, o ninguno.
type ShipmentTxRunner interface {
	RunShipment(ctx context.Context, fn func(
		shipmentRepo repository.ShipmentRepository,
		recordRepo repository.RecordRepository,
	) error) error
}

// SaleTxRunner ejecuta una función dentro de una transacción con los repos de
// ventas y discos atados a esa tx.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		recordRepo repository.RecordRepository,
	) error) error
}
