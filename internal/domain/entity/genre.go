package entity

import "time"

// Genre representa un género musical del catálogo.
type Genre struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
