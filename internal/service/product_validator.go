package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"shophub/internal/errors"
	"shophub/internal/model"
)

var (
	// priceRegex restricts prices to an integer part plus at most two
	// decimal digits, matched against the decimal rendering of the value
	// rather than compared with a floating-point epsilon.
	priceRegex = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	// imageURLRegex accepts http and https URLs only.
	imageURLRegex = regexp.MustCompile(`^https?://.+`)
)

// ProductValidator enforces the catalog record invariants before a create
// or update is persisted. Violations are reported in batch, one entry per
// field, so the client can surface the full list.
type ProductValidator struct{}

// NewProductValidator creates a new product validator.
func NewProductValidator() *ProductValidator {
	return &ProductValidator{}
}

// ValidateCreate trims and checks a create request against the full
// constraint set, returning the normalized record or a ValidationError.
func (v *ProductValidator) ValidateCreate(input model.ProductInput) (model.Product, error) {
	product := model.Product{
		Title:            strings.TrimSpace(input.Title),
		ShortDescription: strings.TrimSpace(input.ShortDescription),
		FullDescription:  strings.TrimSpace(input.FullDescription),
		Category:         strings.TrimSpace(input.Category),
		ImageURL:         strings.TrimSpace(input.ImageURL),
		CreatedBy:        strings.TrimSpace(input.CreatedBy),
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if product.CreatedBy == "" {
		product.CreatedBy = model.DefaultCreatedBy
	}

	if err := v.check(product, input.Price == nil); err != nil {
		return model.Product{}, err
	}
	return product, nil
}

// ValidateUpdate merges the patch onto the existing record and re-runs the
// same constraint set on the merged result. There is no separate partial
// rule set.
func (v *ProductValidator) ValidateUpdate(existing model.Product, patch model.ProductPatch) (model.Product, error) {
	merged := patch.Apply(existing)
	merged.Title = strings.TrimSpace(merged.Title)
	merged.ShortDescription = strings.TrimSpace(merged.ShortDescription)
	merged.FullDescription = strings.TrimSpace(merged.FullDescription)
	merged.Category = strings.TrimSpace(merged.Category)
	merged.ImageURL = strings.TrimSpace(merged.ImageURL)
	merged.CreatedBy = strings.TrimSpace(merged.CreatedBy)
	if merged.CreatedBy == "" {
		merged.CreatedBy = model.DefaultCreatedBy
	}

	if err := v.check(merged, false); err != nil {
		return model.Product{}, err
	}
	return merged, nil
}

// check runs every field rule and aggregates the first violated rule per
// field into one ValidationError.
func (v *ProductValidator) check(p model.Product, priceMissing bool) error {
	var fields []errors.FieldError
	add := func(field, message string) {
		fields = append(fields, errors.FieldError{Field: field, Message: message})
	}

	switch {
	case p.Title == "":
		add("title", "Product title is required")
	case utf8.RuneCountInString(p.Title) < 3:
		add("title", "Title must be at least 3 characters long")
	case utf8.RuneCountInString(p.Title) > 200:
		add("title", "Title cannot exceed 200 characters")
	}

	switch {
	case p.ShortDescription == "":
		add("shortDescription", "Short description is required")
	case utf8.RuneCountInString(p.ShortDescription) > 150:
		add("shortDescription", "Short description cannot exceed 150 characters")
	}

	switch {
	case p.FullDescription == "":
		add("fullDescription", "Full description is required")
	case utf8.RuneCountInString(p.FullDescription) < 10:
		add("fullDescription", "Full description must be at least 10 characters")
	}

	switch {
	case priceMissing:
		add("price", "Product price is required")
	case p.Price < 0:
		add("price", "Price cannot be negative")
	case !priceRegex.MatchString(strconv.FormatFloat(p.Price, 'f', -1, 64)):
		add("price", "Price must have at most 2 decimal places")
	}

	switch {
	case p.Category == "":
		add("category", "Product category is required")
	case !model.IsValidCategory(p.Category):
		add("category", fmt.Sprintf("%s is not a valid category", p.Category))
	}

	// Stock is a whole number by type; only the sign can be wrong.
	if p.Stock < 0 {
		add("stock", "Stock cannot be negative")
	}

	switch {
	case p.ImageURL == "":
		add("imageUrl", "Product image URL is required")
	case !imageURLRegex.MatchString(p.ImageURL):
		add("imageUrl", "Please provide a valid image URL")
	}

	if len(fields) > 0 {
		return &errors.ValidationError{Fields: fields}
	}
	return nil
}
