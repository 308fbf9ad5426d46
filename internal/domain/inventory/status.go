package inventory

import "github.com/jhoicas/vinilos-api/internal/domain/entity"

// DeriveStatus deriva el estado de disponibilidad a partir de la cantidad en stock
// (servicio de dominio, función pura). Se invoca en cada escritura de cantidad;
// el estado nunca se asigna de forma independiente.
func DeriveStatus(quantity int) int {
	if quantity > 0 {
		return entity.StatusInStock
	}
	return entity.StatusOutOfStock
}

// ClampQuantity aplica un delta con clamp a 0: el stock nunca queda negativo.
func ClampQuantity(current, delta int) int {
	q := current + delta
	if q < 0 {
		return 0
	}
	return q
}
