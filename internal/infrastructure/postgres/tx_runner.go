package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/vinilos-api/internal/application/inventory"
	"github.com/jhoicas/vinilos-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.ShipmentTxRunner and inventory.SaleTxRunner.
var _ inventory.ShipmentTxRunner = (*TxRunner)(nil)
var _ inventory.SaleTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Los ajustes
// de stock dentro del callback bloquean filas con SELECT FOR UPDATE, así que
// dos transacciones que tocan el mismo disco se serializan en la BD.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunShipment inicia una transacción, ejecuta fn con los repos de ingresos y
// discos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunShipment(ctx context.Context, fn func(
	shipmentRepo repository.ShipmentRepository,
	recordRepo repository.RecordRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewShipmentRepository(tx), NewRecordRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale inicia una transacción con los repos de ventas y discos atados a la tx.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	recordRepo repository.RecordRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSaleRepository(tx), NewRecordRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
