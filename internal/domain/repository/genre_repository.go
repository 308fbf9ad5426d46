package repository

import "github.com/jhoicas/vinilos-api/internal/domain/entity"

// GenreRepository define el puerto de persistencia para géneros (lookup plano).
type GenreRepository interface {
	Create(genre *entity.Genre) error
	GetByID(id string) (*entity.Genre, error)
	Update(genre *entity.Genre) error
	List(limit, offset int) ([]*entity.Genre, error)
	Delete(id string) error
}
