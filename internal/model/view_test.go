package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    ProductView
		expected ProductView
	}{
		{
			name: "current-shape record maps onto the canonical fields",
			input: ProductView{
				Title:            "Wireless Mouse",
				ShortDescription: "Ergonomic 2.4GHz mouse",
				ImageURL:         "https://example.com/mouse.jpg",
				Price:            29.99,
				Category:         "Electronics",
				Stock:            50,
			},
			expected: ProductView{
				Name:        "Wireless Mouse",
				Description: "Ergonomic 2.4GHz mouse",
				Image:       "https://example.com/mouse.jpg",
				Price:       29.99,
				Category:    "Electronics",
				Stock:       50,
			},
		},
		{
			name: "legacy-shape record passes through unchanged",
			input: ProductView{
				Name:        "Wireless Mouse",
				Description: "Ergonomic 2.4GHz mouse",
				Image:       "https://example.com/mouse.jpg",
				Price:       29.99,
			},
			expected: ProductView{
				Name:        "Wireless Mouse",
				Description: "Ergonomic 2.4GHz mouse",
				Image:       "https://example.com/mouse.jpg",
				Price:       29.99,
			},
		},
		{
			name: "current fields win when both shapes are present",
			input: ProductView{
				Title:       "New Title",
				Name:        "Old Name",
				Description: "Old description",
				ImageURL:    "https://example.com/new.jpg",
				Image:       "https://example.com/old.jpg",
			},
			expected: ProductView{
				Name:        "New Title",
				Description: "Old description",
				Image:       "https://example.com/new.jpg",
			},
		},
		{
			name:  "record with no image gets the placeholder",
			input: ProductView{Name: "Mystery Box"},
			expected: ProductView{
				Name:  "Mystery Box",
				Image: PlaceholderImage,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []ProductView{
		{Title: "Wireless Mouse", ShortDescription: "desc", ImageURL: "https://example.com/a.jpg"},
		{Name: "Wireless Mouse", Description: "desc", Image: "https://example.com/a.jpg"},
		{Name: "No Image"},
		{},
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeShapeEquivalence(t *testing.T) {
	// The same underlying product stored under either naming scheme must
	// render identically.
	current := ProductView{
		Title:            "Wireless Mouse",
		ShortDescription: "Ergonomic 2.4GHz mouse",
		ImageURL:         "https://example.com/mouse.jpg",
		Price:            29.99,
		Stock:            50,
	}
	legacy := ProductView{
		Name:        "Wireless Mouse",
		Description: "Ergonomic 2.4GHz mouse",
		Image:       "https://example.com/mouse.jpg",
		Price:       29.99,
		Stock:       50,
	}

	assert.Equal(t, Normalize(current), Normalize(legacy))
}

func TestProductView(t *testing.T) {
	id := primitive.NewObjectID()
	now := time.Now().UTC().Truncate(time.Millisecond)

	p := Product{
		ID:               id,
		Title:            "Wireless Mouse",
		ShortDescription: "Ergonomic 2.4GHz mouse",
		FullDescription:  "A comfortable wireless mouse with adjustable DPI.",
		Price:            29.99,
		Category:         "Electronics",
		Stock:            50,
		ImageURL:         "https://example.com/mouse.jpg",
		CreatedBy:        DefaultCreatedBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	v := p.View()

	assert.Equal(t, id.Hex(), v.ID)
	assert.Equal(t, "Wireless Mouse", v.Name)
	assert.Equal(t, "Ergonomic 2.4GHz mouse", v.Description)
	assert.Equal(t, "A comfortable wireless mouse with adjustable DPI.", v.FullDescription)
	assert.Equal(t, "https://example.com/mouse.jpg", v.Image)
	assert.Equal(t, 29.99, v.Price)
	assert.Equal(t, 50, v.Stock)
	assert.Equal(t, now, v.CreatedAt)

	assert.Empty(t, v.Title)
	assert.Empty(t, v.ShortDescription)
	assert.Empty(t, v.ImageURL)
}
