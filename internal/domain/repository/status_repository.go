package repository

import "github.com/jhoicas/vinilos-api/internal/domain/entity"

// StatusRepository define el puerto de lectura del catálogo fijo de estados.
type StatusRepository interface {
	GetByID(id int) (*entity.Status, error)
	List() ([]*entity.Status, error)
}
