package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/vinilos-api/internal/application/dto"
	"github.com/jhoicas/vinilos-api/internal/domain"
	"github.com/jhoicas/vinilos-api/internal/domain/entity"
	"github.com/jhoicas/vinilos-api/internal/domain/repository"
)

// GenreUseCase casos de uso CRUD para géneros (lookup plano).
type GenreUseCase struct {
	repo repository.GenreRepository
}

// NewGenreUseCase construye el caso de uso.
func NewGenreUseCase(repo repository.GenreRepository) *GenreUseCase {
	return &GenreUseCase{repo: repo}
}

// Create crea un género.
func (uc *GenreUseCase) Create(in dto.CreateGenreRequest) (*dto.GenreResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	genre := &entity.Genre{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(genre); err != nil {
		return nil, err
	}
	return toGenreResponse(genre), nil
}

// GetByID obtiene un género por ID.
func (uc *GenreUseCase) GetByID(id string) (*dto.GenreResponse, error) {
	genre, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, domain.ErrNotFound
	}
	return toGenreResponse(genre), nil
}

// Update actualiza un género.
func (uc *GenreUseCase) Update(id string, in dto.CreateGenreRequest) (*dto.GenreResponse, error) {
	genre, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		genre.Name = in.Name
	}
	genre.UpdatedAt = time.Now()
	if err := uc.repo.Update(genre); err != nil {
		return nil, err
	}
	return toGenreResponse(genre), nil
}

// List lista géneros con paginación.
func (uc *GenreUseCase) List(limit, offset int) ([]dto.GenreResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GenreResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGenreResponse(g))
	}
	return items, nil
}

// Delete elimina un género por ID.
func (uc *GenreUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toGenreResponse(g *entity.Genre) *dto.GenreResponse {
	return &dto.GenreResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
