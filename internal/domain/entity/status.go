package entity

// Estados de disponibilidad de un disco (catálogo fijo).
const (
	StatusInStock    = 1
	StatusOutOfStock = 2
)

// Status representa una fila del catálogo de estados de disponibilidad.
type Status struct {
	ID   int
	Code string
	Name string
}
