package repository

import "github.com/jhoicas/vinilos-api/internal/domain/entity"

// ArtistRepository define el puerto de persistencia para artistas (lookup plano).
type ArtistRepository interface {
	Create(artist *entity.Artist) error
	GetByID(id string) (*entity.Artist, error)
	Update(artist *entity.Artist) error
	List(limit, offset int) ([]*entity.Artist, error)
	Delete(id string) error
}
