package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vinilos-api/internal/domain"
	"github.com/jhoicas/vinilos-api/internal/domain/entity"
	"github.com/jhoicas/vinilos-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación del puerto ShipmentRepository sobre PostgreSQL
// (usable con pool o tx).
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// Create persiste la cabecera de un ingreso.
func (r *ShipmentRepo) Create(shipment *entity.Shipment) error {
	query := `
		INSERT INTO shipments (id, supplier_id, date, document_ref, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		shipment.ID, shipment.SupplierID, shipment.Date, shipment.DocumentRef,
		shipment.Version, shipment.CreatedAt, shipment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// UpdateHeader actualiza la cabecera con check optimista: el UPDATE exige la
// versión con la que el cliente cargó el agregado e incrementa version. Si no
// afecta filas, se distingue "ya no existe" (ErrNotFound) de "otro escritor la
// modificó" (ErrConflict).
func (r *ShipmentRepo) UpdateHeader(shipment *entity.Shipment) error {
	query := `
		UPDATE shipments SET supplier_id = $2, date = $3, document_ref = $4,
			version = version + 1, updated_at = $5
		WHERE id = $1 AND version = $6`
	cmd, err := r.q.Exec(context.Background(), query,
		shipment.ID, shipment.SupplierID, shipment.Date, shipment.DocumentRef,
		shipment.UpdatedAt, shipment.Version,
	)
	if err != nil {
		return fmt.Errorf("update shipment header: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := r.q.QueryRow(context.Background(),
			`SELECT EXISTS (SELECT 1 FROM shipments WHERE id = $1)`, shipment.ID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check shipment exists: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// Delete elimina la cabecera de un ingreso.
func (r *ShipmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un ingreso; nil si no existe.
func (r *ShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	query := `
		SELECT id, supplier_id, date, document_ref, version, created_at, updated_at
		FROM shipments WHERE id = $1`
	var s entity.Shipment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.SupplierID, &s.Date, &s.DocumentRef, &s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return &s, nil
}

// List lista cabeceras de ingresos con paginación.
func (r *ShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	query := `
		SELECT id, supplier_id, date, document_ref, version, created_at, updated_at
		FROM shipments ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(&s.ID, &s.SupplierID, &s.Date, &s.DocumentRef, &s.Version, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetLines obtiene las líneas de un ingreso ordenadas por disco, para que los
// bloqueos de fila se adquieran siempre en el mismo orden.
func (r *ShipmentRepo) GetLines(shipmentID string) ([]*entity.ShipmentLine, error) {
	query := `
		SELECT shipment_id, record_id, quantity
		FROM shipment_lines WHERE shipment_id = $1 ORDER BY record_id`
	rows, err := r.q.Query(context.Background(), query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.ShipmentLine
	for rows.Next() {
		var l entity.ShipmentLine
		if err := rows.Scan(&l.ShipmentID, &l.RecordID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan shipment line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// InsertLine inserta una línea (clave compuesta shipment_id + record_id).
func (r *ShipmentRepo) InsertLine(line *entity.ShipmentLine) error {
	query := `
		INSERT INTO shipment_lines (shipment_id, record_id, quantity)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, line.ShipmentID, line.RecordID, line.Quantity)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shipment line: %w", err)
	}
	return nil
}

// UpdateLineQuantity actualiza la cantidad de una línea existente.
func (r *ShipmentRepo) UpdateLineQuantity(shipmentID, recordID string, quantity int) error {
	query := `
		UPDATE shipment_lines SET quantity = $3
		WHERE shipment_id = $1 AND record_id = $2`
	cmd, err := r.q.Exec(context.Background(), query, shipmentID, recordID, quantity)
	if err != nil {
		return fmt.Errorf("update shipment line: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteLine elimina una línea puntual.
func (r *ShipmentRepo) DeleteLine(shipmentID, recordID string) error {
	query := `DELETE FROM shipment_lines WHERE shipment_id = $1 AND record_id = $2`
	_, err := r.q.Exec(context.Background(), query, shipmentID, recordID)
	if err != nil {
		return fmt.Errorf("delete shipment line: %w", err)
	}
	return nil
}

// DeleteLines elimina todas las líneas de un ingreso.
func (r *ShipmentRepo) DeleteLines(shipmentID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM shipment_lines WHERE shipment_id = $1`, shipmentID)
	if err != nil {
		return fmt.Errorf("delete shipment lines: %w", err)
	}
	return nil
}
