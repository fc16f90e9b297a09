package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coordinates struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type quoteRequest struct {
	Location coordinates `json:"location"`
	Kind     string      `json:"kind" validate:"omitempty,oneof=delivery pickup"`
}

func ptr(v float64) *float64 { return &v }

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&quoteRequest{Location: coordinates{Latitude: ptr(24.7), Longitude: ptr(69.8)}})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldPaths(t *testing.T) {
	v := New()

	err := v.Validate(&quoteRequest{Location: coordinates{Latitude: ptr(91)}, Kind: "drone"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, []FieldError{
		{Field: "location.latitude", Rule: "lte", Param: "90"},
		{Field: "location.longitude", Rule: "required"},
		{Field: "kind", Rule: "oneof", Param: "delivery pickup"},
	}, validationErr.Fields)
	assert.Contains(t, err.Error(), "location.latitude failed lte=90")
}
