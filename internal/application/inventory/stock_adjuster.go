package inventory

import (
	"fmt"

	"github.com/jhoicas/vinilos-api/internal/domain"
	"github.com/jhoicas/vinilos-api/internal/domain/entity"
	"github.com/jhoicas/vinilos-api/internal/domain/inventory"
	"github.com/jhoicas/vinilos-api/internal/domain/repository"
)

// AdjustStock aplica un delta con signo al stock de un disco: bloquea la fila
// (SELECT FOR UPDATE), aplica el clamp a 0, rederiva el estado y persiste
// cantidad y estado juntos. Devuelve el disco con los valores nuevos.
// No valida suficiencia para deltas negativos; eso lo hace el caller antes
// (ventas usan AdjustStockChecked).
func AdjustStock(recordRepo repository.RecordRepository, recordID string, delta int) (*entity.Record, error) {
	rec, err := recordRepo.GetForUpdate(recordID)
	if err != nil {
		return nil, fmt.Errorf("bloquear disco %s: %w", recordID, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("disco %s: %w", recordID, domain.ErrNotFound)
	}
	return applyDelta(recordRepo, rec, delta)
}

// AdjustStockChecked es la variante con validación de suficiencia: si el delta
// es negativo y la cantidad bloqueada no lo cubre, retorna InsufficientStockError
// sin mutar nada. La validación y la aplicación comparten la misma lectura
// bloqueada, por lo que ningún otro escritor puede intercalarse entre ambas.
func AdjustStockChecked(recordRepo repository.RecordRepository, recordID string, delta int) (*entity.Record, error) {
	rec, err := recordRepo.GetForUpdate(recordID)
	if err != nil {
		return nil, fmt.Errorf("bloquear disco %s: %w", recordID, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("disco %s: %w", recordID, domain.ErrNotFound)
	}
	if delta < 0 && rec.StockQuantity+delta < 0 {
		return nil, &domain.InsufficientStockError{
			RecordID:  recordID,
			Available: rec.StockQuantity,
			Requested: -delta,
		}
	}
	return applyDelta(recordRepo, rec, delta)
}

func applyDelta(recordRepo repository.RecordRepository, rec *entity.Record, delta int) (*entity.Record, error) {
	newQty := inventory.ClampQuantity(rec.StockQuantity, delta)
	statusID := inventory.DeriveStatus(newQty)
	if err := recordRepo.UpdateStock(rec.ID, newQty, statusID); err != nil {
		return nil, fmt.Errorf("actualizar stock del disco %s: %w", rec.ID, err)
	}
	rec.StockQuantity = newQty
	rec.StatusID = statusID
	return rec, nil
}
