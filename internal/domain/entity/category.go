package entity

import "time"

// Category representa uma categoria de produtos. Name é único no sistema.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
