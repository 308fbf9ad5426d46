package dto

import "time"

// CreateArtistRequest alta de un artista.
type CreateArtistRequest struct {
	Name    string `json:"name" validate:"required"`
	Country string `json:"country"`
}

// ArtistResponse representación de un artista.
type ArtistResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateGenreRequest alta de un género.
type CreateGenreRequest struct {
	Name string `json:"name" validate:"required"`
}

// GenreResponse representación de un género.
type GenreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSupplierRequest alta de un proveedor.
type CreateSupplierRequest struct {
	Name  string `json:"name" validate:"required"`
	TaxID string `json:"tax_id"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

// SupplierResponse representación de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusResponse fila del catálogo de estados.
type StatusResponse struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
