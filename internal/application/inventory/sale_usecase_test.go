package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vinilos-api/internal/application/dto"
	appinventory "github.com/jhoicas/vinilos-api/internal/application/inventory"
	"github.com/jhoicas/vinilos-api/internal/domain"
	"github.com/jhoicas/vinilos-api/internal/domain/entity"
)

func newSaleUC(s *fakeStore) *appinventory.SaleUseCase {
	return appinventory.NewSaleUseCase(&fakeTxRunner{s}, &fakeSaleRepo{s})
}

func TestSaleCreate_DescuentaStockYFotografiaPrecio(t *testing.T) {
	s := newFakeStore()
	s.addRecord("r1", 10, entity.StatusInStock, 80000)
	uc := newSaleUC(s)

	resp, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		Date:  "2026-08-15",
		Lines: []dto.LineRequest{{RecordID: "r1", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 8, s.records["r1"].StockQuantity)
	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Lines[0].UnitPrice.Equal(decimal.NewFromInt(80000)))
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(160000)))

	// La foto de precio no cambia aunque el precio vigente del disco cambie después.
	s.records["r1"].Price = decimal.NewFromInt(99000)
	reloaded, err := uc.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Lines[0].UnitPrice.Equal(decimal.NewFromInt(80000)))
}

func TestSaleCreate_StockInsuficiente_RechazaTodo(t *testing.T) {
	s := newFakeStore()
	s.addRecord("r1", 10, entity.StatusInStock, 80000)
	s.addRecord("r2", 3, entity.StatusInStock, 95000)
	uc := newSaleUC(s)

	_, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		Date: "2026-08-15",
		Lines: []dto.LineRequest{
			{RecordID: "r1", Quantity: 2},
			{RecordID: "r2", Quantity: 5},
		},
	})

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	var insufficientErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficientErr))
	assert.Equal(t, "r2", insufficientErr.RecordID)
	assert.Equal(t, 3, insufficientErr.Available)
	assert.Equal(t, 5, insufficientErr.Requested)

	// Sin mutación parcial: el stock de todos los discos queda intacto.
	assert.Equal(t, 10, s.records["r1"].StockQuantity)
	assert.Equal(t, 3, s.records["r2"].StockQuantity)
	assert.Empty(t, s.sales)
	assert.Empty(t, s.saleLines)
}

func TestSaleCreate_LineaInvalida_AbortaTodo(t *testing.T) {
	s := newFakeStore()
	s.addRecord("r1", 10, entity.StatusInStock, 80000)
	s.addRecord("r2", 5, entity.StatusInStock, 95000)
	uc := newSaleUC(s)

	_, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		Date: "2026-08-15",
		Lines: []dto.LineRequest{
			{RecordID: "r1", Quantity: 2},
			{RecordID: "r2", Quantity: 0},
		},
	})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	var qtyErr *domain.InvalidQuantityError
	require.True(t, errors.As(err, &qtyErr))
	assert.Equal(t, "r2", qtyErr.RecordID)
	assert.Equal(t, 10, s.records["r1"].StockQuantity)
	assert.Empty(t, s.sales)
}

func TestSaleUpdate_AumentoCubiertoPorElDeltaNeto(t *testing.T) {
	// Stock inicial 7; venta de 5 deja 2 disponibles. Subir la venta a 6 pide
	// un delta neto de -1, que el stock actual (2) cubre: la validación es
	// contra el delta, no contra la cantidad nueva completa.
	s := newFakeStore()
	s.addRecord("r1", 7, entity.StatusInStock, 80000)
	uc := newSaleUC(s)

	created, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		Date:  "2026-08-15",
		Lines: []dto.LineRequest{{RecordID: "r1", Quantity: 5}},
	})
	require.NoError(t, err)
	require.Equal(t, 2, s.records["r1"].StockQuantity)

	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateSaleRequest{
		Date:    "2026-08-15",
		Version: 1,
		Lines:   []dto.LineRequest{{RecordID: "r1", Quantity: 6}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, s.records["r1"].StockQuantity)
	assert.Equal(t, 6, resp.Lines[0].Quantity)
}

func TestSaleUpdate_AumentoSinStock_RechazaSinMutar(t *testing.T) {
	s := newFakeStore()
	s.addRecord("r1", 5, entity.StatusInStock, 80000)
	s.addRecord("r2", 4, entity.StatusInStock, 95000)
	uc := newSaleUC(s)

	created, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		Date: "2026-08-15",
		Lines: []dto.LineRequest{
			{RecordID: "r1", Quantity: 5},
			{RecordID: "r2", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 0, s.records["r1"].StockQuantity)

	// r1 a 8 exige un delta de -3 con stock 0: se rechaza la edición completa,
	// incluida la baja de r2 que venía en el mismo lote.
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateSaleRequest{
		Date:    "2026-08-15",
		Version: 1,
		Lines: []dto.LineRequest{
			{RecordID: "r1", Quantity: 8},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 0, s.records["r1"].StockQuantity)
	assert.Equal(t, 3, s.records["r2"].StockQuantity)
	lines, _ := (&fakeSaleRepo{s}).GetLines(created.ID)
	require.Len(t, lines, 2, "las líneas quedan como antes de la edición")
}

func TestSaleUpdate_IntercambioDeDiscos(t *testing.T) {
	// Toda la venta se mueve de r1 a r2: la reversa de r1 y el alta de r2 son
	// deltas sobre filas distintas dentro de la misma transacción.
	s := newFakeStore()
	s.addRecord("r1", 5, entity.StatusInStock, 80000)
	s.addRecord("r2", 3, entity.StatusInStock, 95000)
	uc := newSaleUC(s)

	created, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		Date:  "2026-08-15",
		Lines: []dto.LineRequest{{RecordID: "r1", Quantity: 5}},
	})
	require.NoError(t, err)

	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateSaleRequest{
		Date:    "2026-08-15",
		Version: 1,
		Lines:   []dto.LineRequest{{RecordID: "r2", Quantity: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, s.records["r1"].StockQuantity, "la reversa devuelve lo vendido")
	assert.Equal(t, 0, s.records["r2"].StockQuantity)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "r2", resp.Lines[0].RecordID)
}

func TestSaleUpdate_CambioDeCantidad_RefotografiaElPrecio(t *testing.T) {
	s := newFakeStore()
	s.addRecord("r1", 10, entity.StatusInStock, 80000)
	s.addRecord("r2", 10, entity.StatusInStock, 60000)
	uc := newSaleUC(s)

	created, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		Date: "2026-08-15",
		Lines: []dto.LineRequest{
			{RecordID: "r1", Quantity: 2},
			{RecordID: "r2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	// El precio vigente de r1 cambia antes de la edición.
	s.records["r1"].Price = decimal.NewFromInt(120000)
	s.records["r2"].Price = decimal.NewFromInt(75000)

	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateSaleRequest{
		Date:    "2026-08-15",
		Version: 1,
		Lines: []dto.LineRequest{
			{RecordID: "r1", Quantity: 3}, // cambia: re-fotografía
			{RecordID: "r2", Quantity: 1}, // intacta: conserva la foto original
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Lines, 2)
	assert.True(t, resp.Lines[0].UnitPrice.Equal(decimal.NewFromInt(120000)),
		"la línea modificada toma el precio vigente")
	assert.True(t, resp.Lines[1].UnitPrice.Equal(decimal.NewFromInt(60000)),
		"la línea intacta conserva su foto de precio")
}

func TestSaleUpdate_VersionVieja_Conflicto(t *testing.T) {
	s := newFakeStore()
	s.addRecord("r1", 10, entity.StatusInStock, 80000)
	uc := newSaleUC(s)

	created, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		Date:  "2026-08-15",
		Lines: []dto.LineRequest{{RecordID: "r1", Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateSaleRequest{
		Date:    "2026-08-15",
		Version: 1,
		Lines:   []dto.LineRequest{{RecordID: "r1", Quantity: 3}},
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateSaleRequest{
		Date:    "2026-08-15",
		Version: 1,
		Lines:   []dto.LineRequest{{RecordID: "r1", Quantity: 4}},
	})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 7, s.records["r1"].StockQuantity, "el conflicto revierte los deltas del intento")
}

func TestSaleDelete_DevuelveElStock(t *testing.T) {
	s := newFakeStore()
	s.addRecord("r1", 10, entity.StatusInStock, 80000)
	s.addRecord("r2", 5, entity.StatusInStock, 95000)
	uc := newSaleUC(s)

	created, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		Date: "2026-08-15",
		Lines: []dto.LineRequest{
			{RecordID: "r1", Quantity: 3},
			{RecordID: "r2", Quantity: 5},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 0, s.records["r2"].StockQuantity)
	require.Equal(t, entity.StatusOutOfStock, s.records["r2"].StatusID)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	assert.Equal(t, 10, s.records["r1"].StockQuantity)
	assert.Equal(t, 5, s.records["r2"].StockQuantity)
	assert.Equal(t, entity.StatusInStock, s.records["r2"].StatusID)
	assert.Empty(t, s.sales)
	assertStatusConsistente(t, s)
}

// Conservación del ledger: tras una secuencia de altas, ediciones y borrados,
// el stock de cada disco es la suma de las líneas de ingreso vivas menos la
// suma de las líneas de venta vivas (partiendo de 0), nunca negativo.
func TestLedger_ConservacionTrasSecuenciaDeOperaciones(t *testing.T) {
	s := newFakeStore()
	s.addSupplier("sup1")
	s.addRecord("r1", 0, entity.StatusOutOfStock, 80000)
	s.addRecord("r2", 0, entity.StatusOutOfStock, 95000)
	shipUC := newShipmentUC(s)
	saleUC := newSaleUC(s)
	ctx := context.Background()

	ship1, err := shipUC.Create(ctx, dto.CreateShipmentRequest{
		SupplierID: "sup1", Date: "2026-08-01",
		Lines: []dto.LineRequest{{RecordID: "r1", Quantity: 10}, {RecordID: "r2", Quantity: 6}},
	})
	require.NoError(t, err)

	sale1, err := saleUC.Create(ctx, dto.CreateSaleRequest{
		Date:  "2026-08-02",
		Lines: []dto.LineRequest{{RecordID: "r1", Quantity: 4}},
	})
	require.NoError(t, err)

	_, err = shipUC.Update(ctx, ship1.ID, dto.UpdateShipmentRequest{
		SupplierID: "sup1", Date: "2026-08-03", Version: 1,
		Lines: []dto.LineRequest{{RecordID: "r1", Quantity: 12}, {RecordID: "r2", Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = saleUC.Update(ctx, sale1.ID, dto.UpdateSaleRequest{
		Date: "2026-08-04", Version: 1,
		Lines: []dto.LineRequest{{RecordID: "r1", Quantity: 2}, {RecordID: "r2", Quantity: 1}},
	})
	require.NoError(t, err)

	sale2, err := saleUC.Create(ctx, dto.CreateSaleRequest{
		Date:  "2026-08-05",
		Lines: []dto.LineRequest{{RecordID: "r2", Quantity: 1}},
	})
	require.NoError(t, err)
	require.NoError(t, saleUC.Delete(ctx, sale2.ID))

	// Vivo: ingreso {r1:12, r2:2}; venta {r1:2, r2:1}.
	assert.Equal(t, 10, s.records["r1"].StockQuantity)
	assert.Equal(t, 1, s.records["r2"].StockQuantity)
	assertStatusConsistente(t, s)
}
