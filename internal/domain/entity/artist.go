package entity

import "time"

// Artist representa un artista o banda del catálogo.
type Artist struct {
	ID        string
	Name      string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
