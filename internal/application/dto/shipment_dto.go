package dto

import "time"

// LineRequest línea solicitada para un ingreso o una venta: la selección son
// los record_id presentes y Quantity la cantidad solicitada para cada uno.
type LineRequest struct {
	RecordID string `json:"record_id" validate:"required"`
	Quantity int    `json:"quantity"`
}

// CreateShipmentRequest alta de un ingreso de mercancía.
type CreateShipmentRequest struct {
	SupplierID  string        `json:"supplier_id" validate:"required"`
	Date        string        `json:"date" validate:"required,datetime=2006-01-02"`
	DocumentRef string        `json:"document_ref"`
	Lines       []LineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdateShipmentRequest edición de un ingreso. Version es la versión con la que
// el cliente cargó el agregado (check optimista en el commit).
type UpdateShipmentRequest struct {
	SupplierID  string        `json:"supplier_id" validate:"required"`
	Date        string        `json:"date" validate:"required,datetime=2006-01-02"`
	DocumentRef string        `json:"document_ref"`
	Version     int           `json:"version" validate:"min=1"`
	Lines       []LineRequest `json:"lines" validate:"dive"`
}

// ShipmentLineResponse línea de un ingreso en respuestas.
type ShipmentLineResponse struct {
	RecordID string `json:"record_id"`
	Quantity int    `json:"quantity"`
}

// ShipmentResponse representación de un ingreso con sus líneas.
// SkippedRecords lista los discos cuya línea fue rechazada por cantidad no
// positiva y se omitió (política best-effort de los ingresos).
type ShipmentResponse struct {
	ID             string                 `json:"id"`
	SupplierID     string                 `json:"supplier_id"`
	Date           string                 `json:"date"`
	DocumentRef    string                 `json:"document_ref,omitempty"`
	Version        int                    `json:"version"`
	Lines          []ShipmentLineResponse `json:"lines"`
	SkippedRecords []string               `json:"skipped_records,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// ShipmentListResponse listado paginado de ingresos (solo cabeceras).
type ShipmentListResponse struct {
	Items []ShipmentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
