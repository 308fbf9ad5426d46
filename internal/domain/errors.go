package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError identifica el disco sin stock suficiente y cuánto hay disponible.
// Compatible con errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	RecordID  string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el disco %s: disponible %d, solicitado %d",
		e.RecordID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// InvalidQuantityError identifica la línea rechazada por cantidad no positiva.
// Compatible con errors.Is(err, ErrInvalidInput).
type InvalidQuantityError struct {
	RecordID string
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("cantidad inválida %d para el disco %s", e.Quantity, e.RecordID)
}

func (e *InvalidQuantityError) Unwrap() error { return ErrInvalidInput }
