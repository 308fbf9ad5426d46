package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vinilos-api/internal/application/dto"
	appinventory "github.com/jhoicas/vinilos-api/internal/application/inventory"
	"github.com/jhoicas/vinilos-api/internal/domain"
	"github.com/jhoicas/vinilos-api/internal/domain/entity"
	"github.com/jhoicas/vinilos-api/internal/domain/inventory"
)

func newShipmentUC(s *fakeStore) *appinventory.ShipmentUseCase {
	return appinventory.NewShipmentUseCase(&fakeTxRunner{s}, &fakeShipmentRepo{s}, &fakeSupplierRepo{s})
}

// assertStatusConsistente verifica el invariante estado ⇔ cantidad en todos los discos.
func assertStatusConsistente(t *testing.T, s *fakeStore) {
	t.Helper()
	for id, rec := range s.records {
		assert.GreaterOrEqual(t, rec.StockQuantity, 0, "stock negativo en %s", id)
		assert.Equal(t, inventory.DeriveStatus(rec.StockQuantity), rec.StatusID,
			"estado inconsistente en %s", id)
	}
}

func TestShipmentCreate_SumaStockYDerivaEstado(t *testing.T) {
	s := newFakeStore()
	s.addSupplier("sup1")
	s.addRecord("r1", 0, entity.StatusOutOfStock, 80000)
	s.addRecord("r2", 2, entity.StatusInStock, 95000)
	uc := newShipmentUC(s)

	resp, err := uc.Create(context.Background(), dto.CreateShipmentRequest{
		SupplierID: "sup1",
		Date:       "2026-08-10",
		Lines: []dto.LineRequest{
			{RecordID: "r1", Quantity: 3},
			{RecordID: "r2", Quantity: 5},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, 3, s.records["r1"].StockQuantity)
	assert.Equal(t, entity.StatusInStock, s.records["r1"].StatusID)
	assert.Equal(t, 7, s.records["r2"].StockQuantity)
	assert.Equal(t, 1, resp.Version)
	assert.Len(t, resp.Lines, 2)
	assert.Empty(t, resp.SkippedRecords)
	assertStatusConsistente(t, s)
}

func TestShipmentCreate_LineaInvalidaSeOmiteYSeReporta(t *testing.T) {
	s := newFakeStore()
	s.addSupplier("sup1")
	s.addRecord("r1", 0, entity.StatusOutOfStock, 80000)
	s.addRecord("r2", 4, entity.StatusInStock, 95000)
	uc := newShipmentUC(s)

	resp, err := uc.Create(context.Background(), dto.CreateShipmentRequest{
		SupplierID: "sup1",
		Date:       "2026-08-10",
		Lines: []dto.LineRequest{
			{RecordID: "r1", Quantity: 3},
			{RecordID: "r2", Quantity: 0},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"r2"}, resp.SkippedRecords)
	assert.Len(t, resp.Lines, 1)
	assert.Equal(t, 4, s.records["r2"].StockQuantity, "la línea omitida no mueve stock")
}

func TestShipmentCreate_SinLineasValidas_Rechaza(t *testing.T) {
	s := newFakeStore()
	s.addSupplier("sup1")
	s.addRecord("r1", 0, entity.StatusOutOfStock, 80000)
	uc := newShipmentUC(s)

	_, err := uc.Create(context.Background(), dto.CreateShipmentRequest{
		SupplierID: "sup1",
		Date:       "2026-08-10",
		Lines:      []dto.LineRequest{{RecordID: "r1", Quantity: -2}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, s.records["r1"].StockQuantity)
}

func TestShipmentCreate_ProveedorInexistente(t *testing.T) {
	s := newFakeStore()
	s.addRecord("r1", 0, entity.StatusOutOfStock, 80000)
	uc := newShipmentUC(s)

	_, err := uc.Create(context.Background(), dto.CreateShipmentRequest{
		SupplierID: "nope",
		Date:       "2026-08-10",
		Lines:      []dto.LineRequest{{RecordID: "r1", Quantity: 3}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShipmentCreate_DiscoInexistente_RevierteTodo(t *testing.T) {
	s := newFakeStore()
	s.addSupplier("sup1")
	s.addRecord("r1", 0, entity.StatusOutOfStock, 80000)
	uc := newShipmentUC(s)

	_, err := uc.Create(context.Background(), dto.CreateShipmentRequest{
		SupplierID: "sup1",
		Date:       "2026-08-10",
		Lines: []dto.LineRequest{
			{RecordID: "r1", Quantity: 3},
			{RecordID: "fantasma", Quantity: 2},
		},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, s.records["r1"].StockQuantity, "rollback: ningún delta queda aplicado")
	assert.Empty(t, s.shipments)
}

// Escenario de referencia: ingreso {A:10, B:4} editado a {B:6, C:2}.
// A se remueve (delta -10), B pasa de 4 a 6 (delta +2), C entra (delta +2);
// las líneas resultantes son exactamente {B:6, C:2}.
func TestShipmentUpdate_DiffAplicaSoloDeltasNetos(t *testing.T) {
	s := newFakeStore()
	s.addSupplier("sup1")
	s.addRecord("A", 0, entity.StatusOutOfStock, 80000)
	s.addRecord("B", 0, entity.StatusOutOfStock, 95000)
	s.addRecord("C", 0, entity.StatusOutOfStock, 60000)
	uc := newShipmentUC(s)

	created, err := uc.Create(context.Background(), dto.CreateShipmentRequest{
		SupplierID: "sup1",
		Date:       "2026-08-10",
		Lines: []dto.LineRequest{
			{RecordID: "A", Quantity: 10},
			{RecordID: "B", Quantity: 4},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 10, s.records["A"].StockQuantity)
	require.Equal(t, 4, s.records["B"].StockQuantity)

	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateShipmentRequest{
		SupplierID: "sup1",
		Date:       "2026-08-11",
		Version:    1,
		Lines: []dto.LineRequest{
			{RecordID: "B", Quantity: 6},
			{RecordID: "C", Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, s.records["A"].StockQuantity)
	assert.Equal(t, entity.StatusOutOfStock, s.records["A"].StatusID)
	assert.Equal(t, 6, s.records["B"].StockQuantity)
	assert.Equal(t, 2, s.records["C"].StockQuantity)

	require.Len(t, resp.Lines, 2)
	assert.Equal(t, dto.ShipmentLineResponse{RecordID: "B", Quantity: 6}, resp.Lines[0])
	assert.Equal(t, dto.ShipmentLineResponse{RecordID: "C", Quantity: 2}, resp.Lines[1])
	assert.Equal(t, 2, resp.Version)
	assertStatusConsistente(t, s)
}

func TestShipmentUpdate_MismaSeleccion_CeroDeltas(t *testing.T) {
	s := newFakeStore()
	s.addSupplier("sup1")
	s.addRecord("A", 0, entity.StatusOutOfStock, 80000)
	s.addRecord("B", 0, entity.StatusOutOfStock, 95000)
	uc := newShipmentUC(s)

	created, err := uc.Create(context.Background(), dto.CreateShipmentRequest{
		SupplierID: "sup1",
		Date:       "2026-08-10",
		Lines: []dto.LineRequest{
			{RecordID: "A", Quantity: 10},
			{RecordID: "B", Quantity: 4},
		},
	})
	require.NoError(t, err)

	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateShipmentRequest{
		SupplierID: "sup1",
		Date:       "2026-08-10",
		Version:    1,
		Lines: []dto.LineRequest{
			{RecordID: "A", Quantity: 10},
			{RecordID: "B", Quantity: 4},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 10, s.records["A"].StockQuantity)
	assert.Equal(t, 4, s.records["B"].StockQuantity)
	require.Len(t, resp.Lines, 2)
	assert.Equal(t, 10, resp.Lines[0].Quantity)
	assert.Equal(t, 4, resp.Lines[1].Quantity)
}

func TestShipmentUpdate_VersionVieja_Conflicto(t *testing.T) {
	s := newFakeStore()
	s.addSupplier("sup1")
	s.addRecord("A", 0, entity.StatusOutOfStock, 80000)
	uc := newShipmentUC(s)

	created, err := uc.Create(context.Background(), dto.CreateShipmentRequest{
		SupplierID: "sup1",
		Date:       "2026-08-10",
		Lines:      []dto.LineRequest{{RecordID: "A", Quantity: 10}},
	})
	require.NoError(t, err)

	// Primera edición sube la versión a 2.
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateShipmentRequest{
		SupplierID: "sup1",
		Date:       "2026-08-10",
		Version:    1,
		Lines:      []dto.LineRequest{{RecordID: "A", Quantity: 12}},
	})
	require.NoError(t, err)
	require.Equal(t, 12, s.records["A"].StockQuantity)

	// Segunda edición con la versión vieja: conflicto y ninguna mutación.
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateShipmentRequest{
		SupplierID: "sup1",
		Date:       "2026-08-10",
		Version:    1,
		Lines:      []dto.LineRequest{{RecordID: "A", Quantity: 20}},
	})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 12, s.records["A"].StockQuantity, "el conflicto no deja deltas aplicados")
}

func TestShipmentUpdate_NoExiste(t *testing.T) {
	s := newFakeStore()
	s.addSupplier("sup1")
	uc := newShipmentUC(s)

	_, err := uc.Update(context.Background(), "fantasma", dto.UpdateShipmentRequest{
		SupplierID: "sup1",
		Date:       "2026-08-10",
		Version:    1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShipmentDelete_RevierteElCreate(t *testing.T) {
	s := newFakeStore()
	s.addSupplier("sup1")
	s.addRecord("r1", 1, entity.StatusInStock, 80000)
	s.addRecord("r2", 0, entity.StatusOutOfStock, 95000)
	uc := newShipmentUC(s)

	created, err := uc.Create(context.Background(), dto.CreateShipmentRequest{
		SupplierID: "sup1",
		Date:       "2026-08-10",
		Lines: []dto.LineRequest{
			{RecordID: "r1", Quantity: 3},
			{RecordID: "r2", Quantity: 5},
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	assert.Equal(t, 1, s.records["r1"].StockQuantity, "stock exactamente como antes del create")
	assert.Equal(t, 0, s.records["r2"].StockQuantity)
	assert.Empty(t, s.shipments)
	assert.Empty(t, s.shipmentLines)
	assertStatusConsistente(t, s)

	// Borrar de nuevo es no-op.
	require.NoError(t, uc.Delete(context.Background(), created.ID))
}
