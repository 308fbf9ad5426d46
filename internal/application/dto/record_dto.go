package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRecordRequest alta de un disco en el catálogo. El stock inicia en 0 y
// solo se mueve vía ingresos y ventas.
type CreateRecordRequest struct {
	ArtistID      string          `json:"artist_id" validate:"required"`
	GenreID       string          `json:"genre_id" validate:"required"`
	Title         string          `json:"title" validate:"required"`
	Label         string          `json:"label"`
	ReleaseYear   int             `json:"release_year" validate:"omitempty,min=1900,max=2100"`
	CatalogNumber string          `json:"catalog_number"`
	Price         decimal.Decimal `json:"price"`
}

// UpdateRecordRequest edición parcial de los campos descriptivos y el precio.
type UpdateRecordRequest struct {
	ArtistID      *string          `json:"artist_id"`
	GenreID       *string          `json:"genre_id"`
	Title         *string          `json:"title"`
	Label         *string          `json:"label"`
	ReleaseYear   *int             `json:"release_year"`
	CatalogNumber *string          `json:"catalog_number"`
	Price         *decimal.Decimal `json:"price"`
}

// RecordResponse representación de un disco en respuestas.
type RecordResponse struct {
	ID            string          `json:"id"`
	ArtistID      string          `json:"artist_id"`
	GenreID       string          `json:"genre_id"`
	Title         string          `json:"title"`
	Label         string          `json:"label,omitempty"`
	ReleaseYear   int             `json:"release_year,omitempty"`
	CatalogNumber string          `json:"catalog_number,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	StatusID      int             `json:"status_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RecordListResponse listado paginado de discos.
type RecordListResponse struct {
	Items []RecordResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
