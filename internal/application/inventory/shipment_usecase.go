package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jhoicas/vinilos-api/internal/application/dto"
	"github.com/jhoicas/vinilos-api/internal/domain"
	"github.com/jhoicas/vinilos-api/internal/domain/entity"
	"github.com/jhoicas/vinilos-api/internal/domain/inventory"
	"github.com/jhoicas/vinilos-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ShipmentUseCase gestiona el ciclo de vida de los ingresos de mercancía:
// alta, edición por diff de líneas y borrado, cada uno como una transacción
// que mueve el stock con delta positivo. Una línea solicitada con cantidad no
// positiva se omite y se reporta en SkippedRecords.
type ShipmentUseCase struct {
	txRunner     ShipmentTxRunner
	shipmentRepo repository.ShipmentRepository
	supplierRepo repository.SupplierRepository
	validate     *validator.Validate
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(
	txRunner ShipmentTxRunner,
	shipmentRepo repository.ShipmentRepository,
	supplierRepo repository.SupplierRepository,
) *ShipmentUseCase {
	return &ShipmentUseCase{
		txRunner:     txRunner,
		shipmentRepo: shipmentRepo,
		supplierRepo: supplierRepo,
		validate:     validator.New(),
	}
}

// Create crea la cabecera, inserta las líneas válidas y suma cada cantidad al
// stock de su disco, todo en una transacción. Los discos rechazados por
// cantidad no positiva se reportan en SkippedRecords.
func (uc *ShipmentUseCase) Create(ctx context.Context, in dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida", domain.ErrInvalidInput)
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("proveedor %s: %w", in.SupplierID, domain.ErrNotFound)
	}

	selection, quantities := linesToSelection(in.Lines)
	diff := inventory.DiffLineItems(nil, selection, quantities)
	if len(diff.Added) == 0 {
		return nil, fmt.Errorf("%w: el ingreso no tiene líneas válidas", domain.ErrInvalidInput)
	}

	now := time.Now()
	shipment := &entity.Shipment{
		ID:          uuid.New().String(),
		SupplierID:  in.SupplierID,
		Date:        date,
		DocumentRef: in.DocumentRef,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.RunShipment(ctx, func(
		shipmentRepo repository.ShipmentRepository,
		recordRepo repository.RecordRepository,
	) error {
		if err := shipmentRepo.Create(shipment); err != nil {
			return err
		}
		for _, c := range diff.Added {
			if _, err := AdjustStock(recordRepo, c.RecordID, c.NewQuantity); err != nil {
				return err
			}
			line := &entity.ShipmentLine{
				ShipmentID: shipment.ID,
				RecordID:   c.RecordID,
				Quantity:   c.NewQuantity,
			}
			if err := shipmentRepo.InsertLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toShipmentResponse(shipment, addedToShipmentLines(shipment.ID, diff.Added))
	resp.SkippedRecords = diff.Rejected
	return resp, nil
}

// Update edita un ingreso existente: computa el diff entre las líneas
// persistidas y la selección nueva, aplica solo los deltas netos y actualiza la
// cabecera con check optimista de versión, todo en una transacción.
func (uc *ShipmentUseCase) Update(ctx context.Context, id string, in dto.UpdateShipmentRequest) (*dto.ShipmentResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida", domain.ErrInvalidInput)
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("proveedor %s: %w", in.SupplierID, domain.ErrNotFound)
	}

	selection, quantities := linesToSelection(in.Lines)

	var shipment *entity.Shipment
	var skipped []string
	err = uc.txRunner.RunShipment(ctx, func(
		shipmentRepo repository.ShipmentRepository,
		recordRepo repository.RecordRepository,
	) error {
		shipment, err = shipmentRepo.GetByID(id)
		if err != nil {
			return err
		}
		if shipment == nil {
			return fmt.Errorf("ingreso %s: %w", id, domain.ErrNotFound)
		}
		lines, err := shipmentRepo.GetLines(id)
		if err != nil {
			return err
		}
		old := make(map[string]int, len(lines))
		for _, l := range lines {
			old[l.RecordID] = l.Quantity
		}

		diff := inventory.DiffLineItems(old, selection, quantities)
		skipped = diff.Rejected

		for _, c := range diff.Removed {
			if _, err := AdjustStock(recordRepo, c.RecordID, -c.OldQuantity); err != nil {
				return err
			}
			if err := shipmentRepo.DeleteLine(id, c.RecordID); err != nil {
				return err
			}
		}
		for _, c := range diff.Changed {
			if _, err := AdjustStock(recordRepo, c.RecordID, c.NewQuantity-c.OldQuantity); err != nil {
				return err
			}
			if err := shipmentRepo.UpdateLineQuantity(id, c.RecordID, c.NewQuantity); err != nil {
				return err
			}
		}
		for _, c := range diff.Added {
			if _, err := AdjustStock(recordRepo, c.RecordID, c.NewQuantity); err != nil {
				return err
			}
			line := &entity.ShipmentLine{ShipmentID: id, RecordID: c.RecordID, Quantity: c.NewQuantity}
			if err := shipmentRepo.InsertLine(line); err != nil {
				return err
			}
		}

		shipment.SupplierID = in.SupplierID
		shipment.Date = date
		shipment.DocumentRef = in.DocumentRef
		shipment.Version = in.Version
		shipment.UpdatedAt = time.Now()
		return shipmentRepo.UpdateHeader(shipment)
	})
	if err != nil {
		return nil, err
	}

	resp, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.SkippedRecords = skipped
	return resp, nil
}

// Delete revierte el delta de cada línea (resta lo recibido, con clamp a 0),
// borra las líneas y la cabecera en una transacción. No-op si el ingreso no existe.
func (uc *ShipmentUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunShipment(ctx, func(
		shipmentRepo repository.ShipmentRepository,
		recordRepo repository.RecordRepository,
	) error {
		shipment, err := shipmentRepo.GetByID(id)
		if err != nil {
			return err
		}
		if shipment == nil {
			return nil
		}
		lines, err := shipmentRepo.GetLines(id)
		if err != nil {
			return err
		}
		for _, l := range lines {
			if _, err := AdjustStock(recordRepo, l.RecordID, -l.Quantity); err != nil {
				return err
			}
		}
		if err := shipmentRepo.DeleteLines(id); err != nil {
			return err
		}
		return shipmentRepo.Delete(id)
	})
}

// Get obtiene un ingreso con sus líneas.
func (uc *ShipmentUseCase) Get(_ context.Context, id string) (*dto.ShipmentResponse, error) {
	shipment, err := uc.shipmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, fmt.Errorf("ingreso %s: %w", id, domain.ErrNotFound)
	}
	lines, err := uc.shipmentRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(shipment, lines), nil
}

// List lista cabeceras de ingresos con paginación.
func (uc *ShipmentUseCase) List(_ context.Context, limit, offset int) (*dto.ShipmentListResponse, error) {
	list, err := uc.shipmentRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShipmentResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShipmentResponse(s, nil))
	}
	return &dto.ShipmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// linesToSelection separa las líneas del request en selección y mapa de cantidades.
func linesToSelection(lines []dto.LineRequest) ([]string, map[string]int) {
	selection := make([]string, 0, len(lines))
	quantities := make(map[string]int, len(lines))
	for _, l := range lines {
		selection = append(selection, l.RecordID)
		quantities[l.RecordID] = l.Quantity
	}
	return selection, quantities
}

func addedToShipmentLines(shipmentID string, added []inventory.LineChange) []*entity.ShipmentLine {
	lines := make([]*entity.ShipmentLine, 0, len(added))
	for _, c := range added {
		lines = append(lines, &entity.ShipmentLine{
			ShipmentID: shipmentID,
			RecordID:   c.RecordID,
			Quantity:   c.NewQuantity,
		})
	}
	return lines
}

func toShipmentResponse(s *entity.Shipment, lines []*entity.ShipmentLine) *dto.ShipmentResponse {
	resp := &dto.ShipmentResponse{
		ID:          s.ID,
		SupplierID:  s.SupplierID,
		Date:        s.Date.Format(dateLayout),
		DocumentRef: s.DocumentRef,
		Version:     s.Version,
		Lines:       make([]dto.ShipmentLineResponse, 0, len(lines)),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.ShipmentLineResponse{RecordID: l.RecordID, Quantity: l.Quantity})
	}
	return resp
}
