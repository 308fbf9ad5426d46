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

var _ repository.GenreRepository = (*GenreRepo)(nil)

// GenreRepo implementación del puerto GenreRepository sobre PostgreSQL.
type GenreRepo struct {
	q Querier
}

func NewGenreRepository(q Querier) *GenreRepo {
	return &GenreRepo{q: q}
}

func (r *GenreRepo) Create(genre *entity.Genre) error {
	query := `
		INSERT INTO genres (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		genre.ID, genre.Name, genre.CreatedAt, genre.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert genre: %w", err)
	}
	return nil
}

func (r *GenreRepo) GetByID(id string) (*entity.Genre, error) {
	query := `SELECT id, name, created_at, updated_at FROM genres WHERE id = $1`
	var g entity.Genre
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get genre: %w", err)
	}
	return &g, nil
}

func (r *GenreRepo) Update(genre *entity.Genre) error {
	query := `UPDATE genres SET name = $2, updated_at = $3 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		genre.ID, genre.Name, genre.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update genre: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GenreRepo) List(limit, offset int) ([]*entity.Genre, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM genres ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()
	var list []*entity.Genre
	for rows.Next() {
		var g entity.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

func (r *GenreRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
