package models

import "time"

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Dimensions are display strings ("120 cm"), not measurements the server
// computes with.
type Dimensions struct {
	Length string `json:"length,omitempty"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

type Product struct {
	ID          string     `json:"id"`
	CodeName    string     `json:"code_name"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	CategoryID  string     `json:"category_id"`
	Images      []string   `json:"images"`
	Dimensions  Dimensions `json:"dimensions"`
	AgeRange    string     `json:"age_range"`
	InStock     bool       `json:"in_stock"`
	Featured    bool       `json:"featured"`
	CreatedAt   time.Time  `json:"created_at"`
	Category    *Category  `json:"category,omitempty"`
}
