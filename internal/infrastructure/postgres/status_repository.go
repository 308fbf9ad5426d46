package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vinilos-api/internal/domain/entity"
	"github.com/jhoicas/vinilos-api/internal/domain/repository"
)

var _ repository.StatusRepository = (*StatusRepo)(nil)

// StatusRepo lectura del catálogo fijo de estados de disponibilidad.
type StatusRepo struct {
	q Querier
}

func NewStatusRepository(q Querier) *StatusRepo {
	return &StatusRepo{q: q}
}

func (r *StatusRepo) GetByID(id int) (*entity.Status, error) {
	query := `SELECT id, code, name FROM statuses WHERE id = $1`
	var s entity.Status
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Code, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status: %w", err)
	}
	return &s, nil
}

func (r *StatusRepo) List() ([]*entity.Status, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, code, name FROM statuses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Status
	for rows.Next() {
		var s entity.Status
		if err := rows.Scan(&s.ID, &s.Code, &s.Name); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
