package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest alta de una venta. A diferencia de los ingresos, una línea
// con cantidad no positiva aborta la operación completa.
type CreateSaleRequest struct {
	Date        string        `json:"date" validate:"required,datetime=2006-01-02"`
	DocumentRef string        `json:"document_ref"`
	Lines       []LineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdateSaleRequest edición de una venta con check optimista de versión.
type UpdateSaleRequest struct {
	Date        string        `json:"date" validate:"required,datetime=2006-01-02"`
	DocumentRef string        `json:"document_ref"`
	Version     int           `json:"version" validate:"min=1"`
	Lines       []LineRequest `json:"lines" validate:"dive"`
}

// SaleLineResponse línea de una venta; UnitPrice es la foto de precio capturada.
type SaleLineResponse struct {
	RecordID  string          `json:"record_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SaleResponse representación de una venta con sus líneas y el total.
type SaleResponse struct {
	ID          string             `json:"id"`
	Date        string             `json:"date"`
	DocumentRef string             `json:"document_ref,omitempty"`
	Version     int                `json:"version"`
	Lines       []SaleLineResponse `json:"lines"`
	Total       decimal.Decimal    `json:"total"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// SaleListResponse listado paginado de ventas (solo cabeceras).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
