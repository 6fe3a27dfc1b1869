package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "product not found",
			err:            ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "product not found",
		},
		{
			name:           "wrapped not found still classifies",
			err:            fmt.Errorf("fetching: %w", ErrProductNotFound),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "fetching: product not found",
		},
		{
			name:           "invalid id",
			err:            ErrInvalidID,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid id",
		},
		{
			name:           "invalid credentials",
			err:            ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "invalid email or password",
		},
		{
			name:           "duplicate registration",
			err:            ErrUserAlreadyExists,
			expectedStatus: http.StatusConflict,
			expectedMsg:    "user already exists",
		},
		{
			name:           "unknown errors are hidden behind a generic message",
			err:            fmt.Errorf("connection reset by peer"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedMsg, httpErr.Message)
		})
	}
}

func TestMapErrorToHTTP_Validation(t *testing.T) {
	ve := &ValidationError{Fields: []FieldError{
		{Field: "price", Message: "Price cannot be negative"},
		{Field: "category", Message: "Gadgets is not a valid category"},
	}}

	httpErr := MapErrorToHTTP(ve)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.Equal(t, []string{
		"Price cannot be negative",
		"Gadgets is not a valid category",
	}, httpErr.Errors)

	resp := httpErr.ToErrorResponse()
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Len(t, resp.Errors, 2)
}

func TestValidationError_Error(t *testing.T) {
	ve := &ValidationError{Fields: []FieldError{
		{Field: "title", Message: "Product title is required"},
	}}
	assert.Equal(t, "validation failed: Product title is required", ve.Error())

	got, ok := AsValidationError(fmt.Errorf("saving: %w", ve))
	require.True(t, ok)
	assert.Equal(t, ve, got)
}
