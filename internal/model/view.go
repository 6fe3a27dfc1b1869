package model

import (
	"time"
)

// PlaceholderImage is served when a record carries no image at all.
const PlaceholderImage = "https://via.placeholder.com/400"

// ProductView is the canonical display shape handed to catalog consumers.
// Records arrive in one of two historical naming schemes: the current
// title/shortDescription/imageUrl fields or the legacy name/description/image
// fields. A normalized view exposes exactly the canonical name, description
// and image fields; the alias fields are kept only so a legacy-shaped record
// can be decoded into this type.
type ProductView struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string    `json:"name,omitempty" bson:"name,omitempty"`
	Description     string    `json:"description,omitempty" bson:"description,omitempty"`
	FullDescription string    `json:"fullDescription,omitempty" bson:"fullDescription,omitempty"`
	Image           string    `json:"image,omitempty" bson:"image,omitempty"`
	Price           float64   `json:"price" bson:"price"`
	Category        string    `json:"category,omitempty" bson:"category,omitempty"`
	Stock           int       `json:"stock" bson:"stock"`
	CreatedBy       string    `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitzero" bson:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero" bson:"updatedAt,omitempty"`

	// Current-scheme aliases, cleared by Normalize.
	Title            string `json:"title,omitempty" bson:"title,omitempty"`
	ShortDescription string `json:"shortDescription,omitempty" bson:"shortDescription,omitempty"`
	ImageURL         string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

// Normalize reconciles the two naming schemes into the canonical one: name
// prefers title, description prefers shortDescription, image prefers imageUrl
// and falls back to a placeholder when neither field is set. Normalizing an
// already-normalized view yields the same view.
func Normalize(v ProductView) ProductView {
	out := v

	if out.Title != "" {
		out.Name = out.Title
	}
	if out.ShortDescription != "" {
		out.Description = out.ShortDescription
	}
	switch {
	case out.ImageURL != "":
		out.Image = out.ImageURL
	case out.Image != "":
		// already canonical
	default:
		out.Image = PlaceholderImage
	}

	out.Title = ""
	out.ShortDescription = ""
	out.ImageURL = ""
	return out
}

// View projects a stored product into its normalized display shape.
func (p Product) View() ProductView {
	id := ""
	if !p.ID.IsZero() {
		id = p.ID.Hex()
	}
	return Normalize(ProductView{
		ID:               id,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		FullDescription:  p.FullDescription,
		ImageURL:         p.ImageURL,
		Price:            p.Price,
		Category:         p.Category,
		Stock:            p.Stock,
		CreatedBy:        p.CreatedBy,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	})
}
