package entity

import "time"

// Shipment representa la cabecera de un ingreso de mercancía desde un proveedor.
// Version es el contador de concurrencia optimista: el UPDATE de cabecera exige
// la versión con la que el cliente cargó el agregado.
type Shipment struct {
	ID          string
	SupplierID  string
	Date        time.Time
	DocumentRef string // remisión o factura del proveedor
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ShipmentLine línea de un ingreso: un disco aparece a lo sumo una vez por ingreso
// (clave compuesta shipment_id + record_id). Quantity siempre > 0 cuando la línea existe.
type ShipmentLine struct {
	ShipmentID string
	RecordID   string
	Quantity   int
}
