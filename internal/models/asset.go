package models

// Asset is the single tracked record: a named item with an optional
// category and a quantity count. Category and Quantity are pointers so
// a missing column value renders as JSON null, matching the API shape.
type Asset struct {
	ID       int     `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"size:255;not null"`
	Category *string `json:"category" gorm:"size:100"`
	Quantity *int    `json:"quantity" gorm:"default:1"`
}
