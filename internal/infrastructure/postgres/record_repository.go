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

var _ repository.RecordRepository = (*RecordRepo)(nil)

// RecordRepo implementación del puerto RecordRepository sobre PostgreSQL
// (usable con pool o tx).
type RecordRepo struct {
	q Querier
}

// NewRecordRepository construye el adaptador de persistencia para discos.
// Pasar pool o tx (Querier).
func NewRecordRepository(q Querier) *RecordRepo {
	return &RecordRepo{q: q}
}

const recordColumns = `id, artist_id, genre_id, title, label, release_year, catalog_number,
		price, stock_quantity, status_id, created_at, updated_at`

// Create persiste un disco nuevo.
func (r *RecordRepo) Create(record *entity.Record) error {
	query := `
		INSERT INTO records (id, artist_id, genre_id, title, label, release_year, catalog_number, price, stock_quantity, status_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.ArtistID, record.GenreID, record.Title, record.Label,
		record.ReleaseYear, record.CatalogNumber, record.Price,
		record.StockQuantity, record.StatusID, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// GetByID obtiene un disco por ID; nil si no existe.
func (r *RecordRepo) GetByID(id string) (*entity.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el disco bloqueando la fila (SELECT FOR UPDATE) para que
// ningún otro ajuste al mismo disco se intercale entre la lectura y la escritura.
func (r *RecordRepo) GetForUpdate(id string) (*entity.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *RecordRepo) scanOne(query, id string) (*entity.Record, error) {
	var rec entity.Record
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.ArtistID, &rec.GenreID, &rec.Title, &rec.Label,
		&rec.ReleaseYear, &rec.CatalogNumber, &rec.Price,
		&rec.StockQuantity, &rec.StatusID, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return &rec, nil
}

// UpdateStock persiste cantidad y estado juntos (misma escritura, nunca por separado).
func (r *RecordRepo) UpdateStock(id string, quantity, statusID int) error {
	query := `
		UPDATE records SET stock_quantity = $2, status_id = $3, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, quantity, statusID)
	if err != nil {
		return fmt.Errorf("update record stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update actualiza los campos descriptivos y el precio. No toca stock ni estado.
func (r *RecordRepo) Update(record *entity.Record) error {
	query := `
		UPDATE records SET artist_id = $2, genre_id = $3, title = $4, label = $5,
			release_year = $6, catalog_number = $7, price = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		record.ID, record.ArtistID, record.GenreID, record.Title, record.Label,
		record.ReleaseYear, record.CatalogNumber, record.Price, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista discos con paginación.
func (r *RecordRepo) List(limit, offset int) ([]*entity.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records ORDER BY title LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()
	var list []*entity.Record
	for rows.Next() {
		var rec entity.Record
		if err := rows.Scan(
			&rec.ID, &rec.ArtistID, &rec.GenreID, &rec.Title, &rec.Label,
			&rec.ReleaseYear, &rec.CatalogNumber, &rec.Price,
			&rec.StockQuantity, &rec.StatusID, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Delete elimina un disco por ID.
func (r *RecordRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
