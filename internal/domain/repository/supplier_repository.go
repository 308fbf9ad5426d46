package repository

import "github.com/jhoicas/vinilos-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para proveedores (lookup plano).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}
