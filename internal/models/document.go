package models

import "time"

// MapDocument is a stored map definition, served as-is to map containers.
type MapDocument struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Body      []byte    `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}
