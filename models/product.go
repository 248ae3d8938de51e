package models

import (
	"time"
)

// Product is the canonical record behind both API surfaces. The extended
// fields (image, category, color) default to empty strings so a record
// created through the core surface stays fully readable through the
// extended one.
type Product struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Image       string    `gorm:"size:500" json:"image"`
	Category    string    `gorm:"size:100" json:"category"`
	Color       string    `gorm:"size:50" json:"color"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (p *Product) TableName() string {
	return "products"
}

// CoreView projects the record for the /api/v1/products surface.
func (p *Product) CoreView() map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"price":       p.Price,
		"description": p.Description,
	}
}

// ExtendedView projects the full record for the /api/angularProduct
// surface, keyed by the external identifier "_id".
func (p *Product) ExtendedView() map[string]interface{} {
	return map[string]interface{}{
		"_id":         p.ID,
		"name":        p.Name,
		"price":       p.Price,
		"description": p.Description,
		"image":       p.Image,
		"category":    p.Category,
		"color":       p.Color,
		"createdAt":   p.CreatedAt,
	}
}
