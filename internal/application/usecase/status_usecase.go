package usecase

import (
	"github.com/jhoicas/vinilos-api/internal/application/dto"
	"github.com/jhoicas/vinilos-api/internal/domain"
	"github.com/jhoicas/vinilos-api/internal/domain/repository"
)

// StatusUseCase lectura del catálogo fijo de estados de disponibilidad.
type StatusUseCase struct {
	repo repository.StatusRepository
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(repo repository.StatusRepository) *StatusUseCase {
	return &StatusUseCase{repo: repo}
}

// List lista los estados del catálogo.
func (uc *StatusUseCase) List() ([]dto.StatusResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StatusResponse, 0, len(list))
	for _, st := range list {
		items = append(items, dto.StatusResponse{ID: st.ID, Code: st.Code, Name: st.Name})
	}
	return items, nil
}

// GetByID obtiene un estado por ID.
func (uc *StatusUseCase) GetByID(id int) (*dto.StatusResponse, error) {
	st, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.StatusResponse{ID: st.ID, Code: st.Code, Name: st.Name}, nil
}
