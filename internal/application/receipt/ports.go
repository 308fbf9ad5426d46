package receipt

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vinilos-api/internal/domain/entity"
)

// LineForPDF línea de venta enriquecida con los datos del disco para el recibo.
type LineForPDF struct {
	Title      string
	ArtistName string
	Quantity   int
	UnitPrice  decimal.Decimal
	Subtotal   decimal.Decimal
}

// PDFGenerator genera el recibo de una venta en PDF.
type PDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, lines []LineForPDF, total decimal.Decimal) ([]byte, error)
}
