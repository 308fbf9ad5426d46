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

var _ repository.ArtistRepository = (*ArtistRepo)(nil)

// ArtistRepo implementación del puerto ArtistRepository sobre PostgreSQL.
type ArtistRepo struct {
	q Querier
}

func NewArtistRepository(q Querier) *ArtistRepo {
	return &ArtistRepo{q: q}
}

func (r *ArtistRepo) Create(artist *entity.Artist) error {
	query := `
		INSERT INTO artists (id, name, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		artist.ID, artist.Name, artist.Country, artist.CreatedAt, artist.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert artist: %w", err)
	}
	return nil
}

func (r *ArtistRepo) GetByID(id string) (*entity.Artist, error) {
	query := `SELECT id, name, country, created_at, updated_at FROM artists WHERE id = $1`
	var a entity.Artist
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.Country, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get artist: %w", err)
	}
	return &a, nil
}

func (r *ArtistRepo) Update(artist *entity.Artist) error {
	query := `
		UPDATE artists SET name = $2, country = $3, updated_at = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		artist.ID, artist.Name, artist.Country, artist.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ArtistRepo) List(limit, offset int) ([]*entity.Artist, error) {
	query := `
		SELECT id, name, country, created_at, updated_at
		FROM artists ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()
	var list []*entity.Artist
	for rows.Next() {
		var a entity.Artist
		if err := rows.Scan(&a.ID, &a.Name, &a.Country, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *ArtistRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
