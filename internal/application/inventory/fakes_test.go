package inventory_test

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vinilos-api/internal/domain"
	"github.com/jhoicas/vinilos-api/internal/domain/entity"
	"github.com/jhoicas/vinilos-api/internal/domain/repository"
)

// fakeStore estado en memoria compartido por los repos fake. El runner fake
// toma un snapshot antes de cada "transacción" y lo restaura si la función
// retorna error, emulando el rollback.
type fakeStore struct {
	records       map[string]*entity.Record
	suppliers     map[string]*entity.Supplier
	shipments     map[string]*entity.Shipment
	shipmentLines map[string][]*entity.ShipmentLine
	sales         map[string]*entity.Sale
	saleLines     map[string][]*entity.SaleLine
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records:       map[string]*entity.Record{},
		suppliers:     map[string]*entity.Supplier{},
		shipments:     map[string]*entity.Shipment{},
		shipmentLines: map[string][]*entity.ShipmentLine{},
		sales:         map[string]*entity.Sale{},
		saleLines:     map[string][]*entity.SaleLine{},
	}
}

func (s *fakeStore) addRecord(id string, stock int, statusID int, price int64) {
	s.records[id] = &entity.Record{
		ID:            id,
		Title:         "Disco " + id,
		Price:         decimal.NewFromInt(price),
		StockQuantity: stock,
		StatusID:      statusID,
	}
}

func (s *fakeStore) addSupplier(id string) {
	s.suppliers[id] = &entity.Supplier{ID: id, Name: "Proveedor " + id}
}

func (s *fakeStore) snapshot() *fakeStore {
	c := newFakeStore()
	for id, r := range s.records {
		cp := *r
		c.records[id] = &cp
	}
	for id, sup := range s.suppliers {
		cp := *sup
		c.suppliers[id] = &cp
	}
	for id, sh := range s.shipments {
		cp := *sh
		c.shipments[id] = &cp
	}
	for id, lines := range s.shipmentLines {
		for _, l := range lines {
			cp := *l
			c.shipmentLines[id] = append(c.shipmentLines[id], &cp)
		}
	}
	for id, sl := range s.sales {
		cp := *sl
		c.sales[id] = &cp
	}
	for id, lines := range s.saleLines {
		for _, l := range lines {
			cp := *l
			c.saleLines[id] = append(c.saleLines[id], &cp)
		}
	}
	return c
}

// ── repos fake ────────────────────────────────────────────────────────────────

type fakeRecordRepo struct{ s *fakeStore }

func (r *fakeRecordRepo) Create(rec *entity.Record) error {
	cp := *rec
	r.s.records[rec.ID] = &cp
	return nil
}

func (r *fakeRecordRepo) GetByID(id string) (*entity.Record, error) {
	rec, ok := r.s.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeRecordRepo) GetForUpdate(id string) (*entity.Record, error) {
	return r.GetByID(id)
}

func (r *fakeRecordRepo) UpdateStock(id string, quantity, statusID int) error {
	rec, ok := r.s.records[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.StockQuantity = quantity
	rec.StatusID = statusID
	return nil
}

func (r *fakeRecordRepo) Update(rec *entity.Record) error {
	cur, ok := r.s.records[rec.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *rec
	cp.StockQuantity = cur.StockQuantity
	cp.StatusID = cur.StatusID
	r.s.records[rec.ID] = &cp
	return nil
}

func (r *fakeRecordRepo) List(_, _ int) ([]*entity.Record, error) { return nil, nil }
func (r *fakeRecordRepo) Delete(id string) error {
	delete(r.s.records, id)
	return nil
}

type fakeSupplierRepo struct{ s *fakeStore }

func (r *fakeSupplierRepo) Create(sup *entity.Supplier) error {
	cp := *sup
	r.s.suppliers[sup.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *sup
	return &cp, nil
}

func (r *fakeSupplierRepo) Update(*entity.Supplier) error             { return nil }
func (r *fakeSupplierRepo) List(_, _ int) ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Delete(string) error                       { return nil }

type fakeShipmentRepo struct{ s *fakeStore }

func (r *fakeShipmentRepo) Create(sh *entity.Shipment) error {
	cp := *sh
	r.s.shipments[sh.ID] = &cp
	return nil
}

func (r *fakeShipmentRepo) UpdateHeader(sh *entity.Shipment) error {
	cur, ok := r.s.shipments[sh.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if cur.Version != sh.Version {
		return domain.ErrConflict
	}
	cp := *sh
	cp.Version++
	r.s.shipments[sh.ID] = &cp
	return nil
}

func (r *fakeShipmentRepo) Delete(id string) error {
	delete(r.s.shipments, id)
	return nil
}

func (r *fakeShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	sh, ok := r.s.shipments[id]
	if !ok {
		return nil, nil
	}
	cp := *sh
	return &cp, nil
}

func (r *fakeShipmentRepo) List(_, _ int) ([]*entity.Shipment, error) { return nil, nil }

func (r *fakeShipmentRepo) GetLines(shipmentID string) ([]*entity.ShipmentLine, error) {
	lines := make([]*entity.ShipmentLine, 0, len(r.s.shipmentLines[shipmentID]))
	for _, l := range r.s.shipmentLines[shipmentID] {
		cp := *l
		lines = append(lines, &cp)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].RecordID < lines[j].RecordID })
	return lines, nil
}

func (r *fakeShipmentRepo) InsertLine(line *entity.ShipmentLine) error {
	cp := *line
	r.s.shipmentLines[line.ShipmentID] = append(r.s.shipmentLines[line.ShipmentID], &cp)
	return nil
}

func (r *fakeShipmentRepo) UpdateLineQuantity(shipmentID, recordID string, quantity int) error {
	for _, l := range r.s.shipmentLines[shipmentID] {
		if l.RecordID == recordID {
			l.Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeShipmentRepo) DeleteLine(shipmentID, recordID string) error {
	lines := r.s.shipmentLines[shipmentID]
	for i, l := range lines {
		if l.RecordID == recordID {
			r.s.shipmentLines[shipmentID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeShipmentRepo) DeleteLines(shipmentID string) error {
	delete(r.s.shipmentLines, shipmentID)
	return nil
}

type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) Create(sl *entity.Sale) error {
	cp := *sl
	r.s.sales[sl.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) UpdateHeader(sl *entity.Sale) error {
	cur, ok := r.s.sales[sl.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if cur.Version != sl.Version {
		return domain.ErrConflict
	}
	cp := *sl
	cp.Version++
	r.s.sales[sl.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	delete(r.s.sales, id)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sl, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sl
	return &cp, nil
}

func (r *fakeSaleRepo) List(_, _ int) ([]*entity.Sale, error) { return nil, nil }

func (r *fakeSaleRepo) GetLines(saleID string) ([]*entity.SaleLine, error) {
	lines := make([]*entity.SaleLine, 0, len(r.s.saleLines[saleID]))
	for _, l := range r.s.saleLines[saleID] {
		cp := *l
		lines = append(lines, &cp)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].RecordID < lines[j].RecordID })
	return lines, nil
}

func (r *fakeSaleRepo) InsertLine(line *entity.SaleLine) error {
	cp := *line
	r.s.saleLines[line.SaleID] = append(r.s.saleLines[line.SaleID], &cp)
	return nil
}

func (r *fakeSaleRepo) UpdateLine(line *entity.SaleLine) error {
	for _, l := range r.s.saleLines[line.SaleID] {
		if l.RecordID == line.RecordID {
			l.Quantity = line.Quantity
			l.UnitPrice = line.UnitPrice
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSaleRepo) DeleteLine(saleID, recordID string) error {
	lines := r.s.saleLines[saleID]
	for i, l := range lines {
		if l.RecordID == recordID {
			r.s.saleLines[saleID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeSaleRepo) DeleteLines(saleID string) error {
	delete(r.s.saleLines, saleID)
	return nil
}

// fakeTxRunner ejecuta la función sobre el store y restaura el snapshot si
// falla, emulando Commit/Rollback.
type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) RunShipment(_ context.Context, fn func(
	repository.ShipmentRepository, repository.RecordRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(&fakeShipmentRepo{r.s}, &fakeRecordRepo{r.s}); err != nil {
		*r.s = *snap
		return err
	}
	return nil
}

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(
	repository.SaleRepository, repository.RecordRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(&fakeSaleRepo{r.s}, &fakeRecordRepo{r.s}); err != nil {
		*r.s = *snap
		return err
	}
	return nil
}
