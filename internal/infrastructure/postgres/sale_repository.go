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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, date, document_ref, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Date, sale.DocumentRef, sale.Version, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// UpdateHeader actualiza la cabecera con check optimista de versión.
func (r *SaleRepo) UpdateHeader(sale *entity.Sale) error {
	query := `
		UPDATE sales SET date = $2, document_ref = $3,
			version = version + 1, updated_at = $4
		WHERE id = $1 AND version = $5`
	cmd, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Date, sale.DocumentRef, sale.UpdatedAt, sale.Version,
	)
	if err != nil {
		return fmt.Errorf("update sale header: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := r.q.QueryRow(context.Background(),
			`SELECT EXISTS (SELECT 1 FROM sales WHERE id = $1)`, sale.ID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check sale exists: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// Delete elimina la cabecera de una venta.
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta; nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, date, document_ref, version, created_at, updated_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Date, &s.DocumentRef, &s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List lista cabeceras de ventas con paginación.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, date, document_ref, version, created_at, updated_at
		FROM sales ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.DocumentRef, &s.Version, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetLines obtiene las líneas de una venta ordenadas por disco.
func (r *SaleRepo) GetLines(saleID string) ([]*entity.SaleLine, error) {
	query := `
		SELECT sale_id, record_id, quantity, unit_price
		FROM sale_lines WHERE sale_id = $1 ORDER BY record_id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("get sale lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.SaleID, &l.RecordID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// InsertLine inserta una línea con su foto de precio.
func (r *SaleRepo) InsertLine(line *entity.SaleLine) error {
	query := `
		INSERT INTO sale_lines (sale_id, record_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		line.SaleID, line.RecordID, line.Quantity, line.UnitPrice)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

// UpdateLine actualiza cantidad y precio unitario de una línea existente.
func (r *SaleRepo) UpdateLine(line *entity.SaleLine) error {
	query := `
		UPDATE sale_lines SET quantity = $3, unit_price = $4
		WHERE sale_id = $1 AND record_id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		line.SaleID, line.RecordID, line.Quantity, line.UnitPrice)
	if err != nil {
		return fmt.Errorf("update sale line: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteLine elimina una línea puntual.
func (r *SaleRepo) DeleteLine(saleID, recordID string) error {
	query := `DELETE FROM sale_lines WHERE sale_id = $1 AND record_id = $2`
	_, err := r.q.Exec(context.Background(), query, saleID, recordID)
	if err != nil {
		return fmt.Errorf("delete sale line: %w", err)
	}
	return nil
}

// DeleteLines elimina todas las líneas de una venta.
func (r *SaleRepo) DeleteLines(saleID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM sale_lines WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete sale lines: %w", err)
	}
	return nil
}
