package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/vinilos-api/internal/application/dto"
	"github.com/jhoicas/vinilos-api/internal/domain"
	"github.com/jhoicas/vinilos-api/internal/domain/entity"
	"github.com/jhoicas/vinilos-api/internal/domain/inventory"
	"github.com/jhoicas/vinilos-api/internal/domain/repository"
)

// SaleUseCase gestiona el ciclo de vida de las ventas: alta, edición por diff
// de líneas y borrado, cada uno como una transacción que mueve el stock con
// delta negativo y valida suficiencia sobre la fila bloqueada antes de cada
// descuento. A diferencia de los ingresos, cualquier línea inválida o sin
// stock suficiente aborta la operación completa sin mutación parcial.
//
// En una edición las reversas (líneas removidas y cantidades que bajan) se
// aplican antes que las altas y los aumentos; como cada disco recibe un único
// delta neto y la suficiencia se valida contra su propia fila bloqueada al
// momento de aplicarlo, una edición que intercambia un disco vendido por otro
// se acepta siempre que cada disco, por separado, tenga stock para su delta.
type SaleUseCase struct {
	txRunner SaleTxRunner
	saleRepo repository.SaleRepository
	validate *validator.Validate
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner SaleTxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{
		txRunner: txRunner,
		saleRepo: saleRepo,
		validate: validator.New(),
	}
}

// Create crea la cabecera, valida suficiencia y descuenta stock por cada línea,
// capturando la foto del precio vigente del disco, todo en una transacción.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida", domain.ErrInvalidInput)
	}

	selection, quantities := linesToSelection(in.Lines)
	diff := inventory.DiffLineItems(nil, selection, quantities)
	if err := rejectInvalidLines(diff, quantities); err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		Date:        date,
		DocumentRef: in.DocumentRef,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var lines []*entity.SaleLine
	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		recordRepo repository.RecordRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, c := range diff.Added {
			rec, err := AdjustStockChecked(recordRepo, c.RecordID, -c.NewQuantity)
			if err != nil {
				return err
			}
			line := &entity.SaleLine{
				SaleID:    sale.ID,
				RecordID:  c.RecordID,
				Quantity:  c.NewQuantity,
				UnitPrice: rec.Price, // foto del precio vigente al insertar
			}
			if err := saleRepo.InsertLine(line); err != nil {
				return err
			}
			lines = append(lines, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, lines), nil
}

// Update edita una venta: computa el diff, aplica primero las reversas
// (removidos y bajas de cantidad) y luego las altas y aumentos con validación
// de suficiencia, re-fotografiando el precio en cada línea insertada o
// modificada, y actualiza la cabecera con check optimista de versión.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida", domain.ErrInvalidInput)
	}

	selection, quantities := linesToSelection(in.Lines)

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		recordRepo repository.RecordRepository,
	) error {
		sale, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
		}
		lines, err := saleRepo.GetLines(id)
		if err != nil {
			return err
		}
		old := make(map[string]int, len(lines))
		for _, l := range lines {
			old[l.RecordID] = l.Quantity
		}

		diff := inventory.DiffLineItems(old, selection, quantities)
		if err := rejectInvalidLines(diff, quantities); err != nil {
			return err
		}

		// Reversas primero: devolver al stock lo removido.
		for _, c := range diff.Removed {
			if _, err := AdjustStock(recordRepo, c.RecordID, c.OldQuantity); err != nil {
				return err
			}
			if err := saleRepo.DeleteLine(id, c.RecordID); err != nil {
				return err
			}
		}
		// Cambios de cantidad: delta negativo cuando la venta crece.
		for _, c := range diff.Changed {
			rec, err := AdjustStockChecked(recordRepo, c.RecordID, -(c.NewQuantity - c.OldQuantity))
			if err != nil {
				return err
			}
			line := &entity.SaleLine{
				SaleID:    id,
				RecordID:  c.RecordID,
				Quantity:  c.NewQuantity,
				UnitPrice: rec.Price, // el cambio de cantidad re-fotografía el precio
			}
			if err := saleRepo.UpdateLine(line); err != nil {
				return err
			}
		}
		for _, c := range diff.Added {
			rec, err := AdjustStockChecked(recordRepo, c.RecordID, -c.NewQuantity)
			if err != nil {
				return err
			}
			line := &entity.SaleLine{
				SaleID:    id,
				RecordID:  c.RecordID,
				Quantity:  c.NewQuantity,
				UnitPrice: rec.Price,
			}
			if err := saleRepo.InsertLine(line); err != nil {
				return err
			}
		}

		sale.Date = date
		sale.DocumentRef = in.DocumentRef
		sale.Version = in.Version
		sale.UpdatedAt = time.Now()
		return saleRepo.UpdateHeader(sale)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// Delete devuelve al stock la cantidad de cada línea, borra líneas y cabecera
// en una transacción. No-op si la venta no existe.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		recordRepo repository.RecordRepository,
	) error {
		sale, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return nil
		}
		lines, err := saleRepo.GetLines(id)
		if err != nil {
			return err
		}
		for _, l := range lines {
			if _, err := AdjustStock(recordRepo, l.RecordID, l.Quantity); err != nil {
				return err
			}
		}
		if err := saleRepo.DeleteLines(id); err != nil {
			return err
		}
		return saleRepo.Delete(id)
	})
}

// Get obtiene una venta con sus líneas y el total.
func (uc *SaleUseCase) Get(_ context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
	}
	lines, err := uc.saleRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, lines), nil
}

// List lista cabeceras de ventas con paginación.
func (uc *SaleUseCase) List(_ context.Context, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s, nil))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// rejectInvalidLines aborta la operación completa si el diff reportó líneas
// con cantidad no positiva (política estricta de ventas).
func rejectInvalidLines(diff inventory.LineDiff, quantities map[string]int) error {
	if len(diff.Rejected) == 0 {
		return nil
	}
	id := diff.Rejected[0]
	return &domain.InvalidQuantityError{RecordID: id, Quantity: quantities[id]}
}

func toSaleResponse(s *entity.Sale, lines []*entity.SaleLine) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:          s.ID,
		Date:        s.Date.Format(dateLayout),
		DocumentRef: s.DocumentRef,
		Version:     s.Version,
		Lines:       make([]dto.SaleLineResponse, 0, len(lines)),
		Total:       decimal.Zero,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.SaleLineResponse{
			RecordID:  l.RecordID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
		resp.Total = resp.Total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return resp
}
