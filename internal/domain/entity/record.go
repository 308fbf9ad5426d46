package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record representa un disco de vinilo del catálogo.
// StockQuantity y StatusID se mutan únicamente a través del ajustador de stock
// (delta con clamp a 0 + rederivación del estado, misma transacción);
// el resto de campos se editan vía CRUD de catálogo.
type Record struct {
	ID            string
	ArtistID      string
	GenreID       string
	Title         string
	Label         string
	ReleaseYear   int
	CatalogNumber string
	Price         decimal.Decimal // precio de venta vigente
	StockQuantity int             // invariante: >= 0
	StatusID      int             // derivado de StockQuantity, nunca se asigna solo
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
