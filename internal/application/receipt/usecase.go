package receipt

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vinilos-api/internal/domain"
	"github.com/jhoicas/vinilos-api/internal/domain/repository"
)

// UseCase genera el recibo PDF de una venta, enriqueciendo cada línea con el
// título y el artista del disco. El precio impreso es la foto capturada en la
// línea de venta, no el precio vigente del disco.
type UseCase struct {
	saleRepo   repository.SaleRepository
	recordRepo repository.RecordRepository
	artistRepo repository.ArtistRepository
	generator  PDFGenerator
}

// NewUseCase construye el caso de uso inyectando sus dependencias.
func NewUseCase(
	saleRepo repository.SaleRepository,
	recordRepo repository.RecordRepository,
	artistRepo repository.ArtistRepository,
	generator PDFGenerator,
) *UseCase {
	return &UseCase{
		saleRepo:   saleRepo,
		recordRepo: recordRepo,
		artistRepo: artistRepo,
		generator:  generator,
	}
}

// DownloadReceiptPDF recupera la venta con sus líneas y genera el recibo.
// Retorna (pdfBytes, filename, nil), o domain.ErrNotFound si la venta no existe.
func (uc *UseCase) DownloadReceiptPDF(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	rawLines, err := uc.saleRepo.GetLines(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener líneas: %w", err)
	}

	total := decimal.Zero
	enriched := make([]LineForPDF, 0, len(rawLines))
	for _, l := range rawLines {
		title := "Disco " + l.RecordID // fallback
		artistName := ""
		if record, rErr := uc.recordRepo.GetByID(l.RecordID); rErr == nil && record != nil {
			title = record.Title
			if artist, aErr := uc.artistRepo.GetByID(record.ArtistID); aErr == nil && artist != nil {
				artistName = artist.Name
			}
		}
		subtotal := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		total = total.Add(subtotal)
		enriched = append(enriched, LineForPDF{
			Title:      title,
			ArtistName: artistName,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			Subtotal:   subtotal,
		})
	}

	pdfBytes, err := uc.generator.GenerateReceiptPDF(ctx, sale, enriched, total)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generar PDF: %w", err)
	}
	filename := fmt.Sprintf("recibo-%s.pdf", sale.Date.Format("20060102"))
	return pdfBytes, filename, nil
}
