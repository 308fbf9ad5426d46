package usecase

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jhoicas/vinilos-api/internal/application/dto"
	"github.com/jhoicas/vinilos-api/internal/domain"
	"github.com/jhoicas/vinilos-api/internal/domain/entity"
	"github.com/jhoicas/vinilos-api/internal/domain/inventory"
	"github.com/jhoicas/vinilos-api/internal/domain/repository"
)

// RecordUseCase casos de uso CRUD del catálogo de discos. El stock y el estado
// no se tocan por aquí: se mueven solo vía ingresos y ventas.
type RecordUseCase struct {
	repo       repository.RecordRepository
	artistRepo repository.ArtistRepository
	genreRepo  repository.GenreRepository
	validate   *validator.Validate
}

// NewRecordUseCase construye el caso de uso.
func NewRecordUseCase(
	repo repository.RecordRepository,
	artistRepo repository.ArtistRepository,
	genreRepo repository.GenreRepository,
) *RecordUseCase {
	return &RecordUseCase{repo: repo, artistRepo: artistRepo, genreRepo: genreRepo, validate: validator.New()}
}

// Create crea un disco con stock 0 y estado derivado (agotado).
func (uc *RecordUseCase) Create(in dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	artist, err := uc.artistRepo.GetByID(in.ArtistID)
	if err != nil || artist == nil {
		return nil, domain.ErrNotFound
	}
	genre, err := uc.genreRepo.GetByID(in.GenreID)
	if err != nil || genre == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	record := &entity.Record{
		ID:            uuid.New().String(),
		ArtistID:      in.ArtistID,
		GenreID:       in.GenreID,
		Title:         in.Title,
		Label:         in.Label,
		ReleaseYear:   in.ReleaseYear,
		CatalogNumber: in.CatalogNumber,
		Price:         in.Price,
		StockQuantity: 0,
		StatusID:      inventory.DeriveStatus(0),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	return toRecordResponse(record), nil
}

// GetByID obtiene un disco por ID.
func (uc *RecordUseCase) GetByID(id string) (*dto.RecordResponse, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return toRecordResponse(record), nil
}

// Update actualiza los campos descriptivos y el precio. No permite modificar
// stock ni estado (se manejan vía ingresos y ventas); el precio nuevo solo
// afecta líneas de venta futuras, nunca las fotos ya capturadas.
func (uc *RecordUseCase) Update(id string, in dto.UpdateRecordRequest) (*dto.RecordResponse, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	if in.ArtistID != nil {
		artist, err := uc.artistRepo.GetByID(*in.ArtistID)
		if err != nil || artist == nil {
			return nil, domain.ErrNotFound
		}
		record.ArtistID = *in.ArtistID
	}
	if in.GenreID != nil {
		genre, err := uc.genreRepo.GetByID(*in.GenreID)
		if err != nil || genre == nil {
			return nil, domain.ErrNotFound
		}
		record.GenreID = *in.GenreID
	}
	if in.Title != nil {
		record.Title = *in.Title
	}
	if in.Label != nil {
		record.Label = *in.Label
	}
	if in.ReleaseYear != nil {
		record.ReleaseYear = *in.ReleaseYear
	}
	if in.CatalogNumber != nil {
		record.CatalogNumber = *in.CatalogNumber
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		record.Price = *in.Price
	}
	record.UpdatedAt = time.Now()
	if err := uc.repo.Update(record); err != nil {
		return nil, err
	}
	return toRecordResponse(record), nil
}

// List lista discos con paginación.
func (uc *RecordUseCase) List(limit, offset int) (*dto.RecordListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecordResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRecordResponse(r))
	}
	return &dto.RecordListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un disco por ID.
func (uc *RecordUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toRecordResponse(r *entity.Record) *dto.RecordResponse {
	return &dto.RecordResponse{
		ID:            r.ID,
		ArtistID:      r.ArtistID,
		GenreID:       r.GenreID,
		Title:         r.Title,
		Label:         r.Label,
		ReleaseYear:   r.ReleaseYear,
		CatalogNumber: r.CatalogNumber,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		StatusID:      r.StatusID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
