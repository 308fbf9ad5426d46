package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/vinilos-api/internal/application/dto"
	"github.com/jhoicas/vinilos-api/internal/domain"
	"github.com/jhoicas/vinilos-api/internal/domain/entity"
	"github.com/jhoicas/vinilos-api/internal/domain/repository"
)

// ArtistUseCase casos de uso CRUD para artistas (lookup plano).
type ArtistUseCase struct {
	repo repository.ArtistRepository
}

// NewArtistUseCase construye el caso de uso.
func NewArtistUseCase(repo repository.ArtistRepository) *ArtistUseCase {
	return &ArtistUseCase{repo: repo}
}

// Create crea un artista.
func (uc *ArtistUseCase) Create(in dto.CreateArtistRequest) (*dto.ArtistResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	artist := &entity.Artist{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Country:   in.Country,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(artist); err != nil {
		return nil, err
	}
	return toArtistResponse(artist), nil
}

// GetByID obtiene un artista por ID.
func (uc *ArtistUseCase) GetByID(id string) (*dto.ArtistResponse, error) {
	artist, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, domain.ErrNotFound
	}
	return toArtistResponse(artist), nil
}

// Update actualiza un artista.
func (uc *ArtistUseCase) Update(id string, in dto.CreateArtistRequest) (*dto.ArtistResponse, error) {
	artist, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		artist.Name = in.Name
	}
	artist.Country = in.Country
	artist.UpdatedAt = time.Now()
	if err := uc.repo.Update(artist); err != nil {
		return nil, err
	}
	return toArtistResponse(artist), nil
}

// List lista artistas con paginación.
func (uc *ArtistUseCase) List(limit, offset int) ([]dto.ArtistResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArtistResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArtistResponse(a))
	}
	return items, nil
}

// Delete elimina un artista por ID.
func (uc *ArtistUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toArtistResponse(a *entity.Artist) *dto.ArtistResponse {
	return &dto.ArtistResponse{
		ID:        a.ID,
		Name:      a.Name,
		Country:   a.Country,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
