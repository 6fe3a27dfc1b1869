package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories is the closed set of product categories. Category matching is
// exact and case-sensitive everywhere; any other value is rejected at write
// time.
var Categories = []string{
	"Electronics",
	"Fashion",
	"Home & Garden",
	"Sports & Outdoors",
	"Books",
	"Toys & Games",
	"Health & Beauty",
	"Automotive",
	"Food & Beverages",
	"Other",
}

// AllCategoriesSentinel is the reserved category filter value meaning
// "no filter applied".
const AllCategoriesSentinel = "All Categories"

// IsValidCategory reports whether c is one of the fixed category labels.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// DefaultCreatedBy is recorded when a write carries no creator identity.
const DefaultCreatedBy = "admin"

// Product represents a catalog product document.
type Product struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	ShortDescription string             `json:"shortDescription" bson:"shortDescription"`
	FullDescription  string             `json:"fullDescription" bson:"fullDescription"`
	Price            float64            `json:"price" bson:"price"`
	Category         string             `json:"category" bson:"category"`
	Stock            int                `json:"stock" bson:"stock"`
	ImageURL         string             `json:"imageUrl" bson:"imageUrl"`
	CreatedBy        string             `json:"createdBy" bson:"createdBy"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsInStock reports whether any units are available.
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

// ProductInput carries the fields a client may supply when creating a
// product. Stock is a pointer so an omitted value can default to zero while
// an explicit zero is still accepted.
type ProductInput struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Price            *float64 `json:"price"`
	Category         string   `json:"category"`
	Stock            *int     `json:"stock"`
	ImageURL         string   `json:"imageUrl"`
	CreatedBy        string   `json:"createdBy"`
}

// ProductPatch carries a partial update. Nil fields keep the stored value;
// the merged record is re-validated with the full create rule set.
type ProductPatch struct {
	Title            *string  `json:"title"`
	ShortDescription *string  `json:"shortDescription"`
	FullDescription  *string  `json:"fullDescription"`
	Price            *float64 `json:"price"`
	Category         *string  `json:"category"`
	Stock            *int     `json:"stock"`
	ImageURL         *string  `json:"imageUrl"`
	CreatedBy        *string  `json:"createdBy"`
}

// Apply merges the patch onto a copy of the existing product and returns it.
func (p ProductPatch) Apply(existing Product) Product {
	merged := existing
	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.ShortDescription != nil {
		merged.ShortDescription = *p.ShortDescription
	}
	if p.FullDescription != nil {
		merged.FullDescription = *p.FullDescription
	}
	if p.Price != nil {
		merged.Price = *p.Price
	}
	if p.Category != nil {
		merged.Category = *p.Category
	}
	if p.Stock != nil {
		merged.Stock = *p.Stock
	}
	if p.ImageURL != nil {
		merged.ImageURL = *p.ImageURL
	}
	if p.CreatedBy != nil {
		merged.CreatedBy = *p.CreatedBy
	}
	return merged
}
