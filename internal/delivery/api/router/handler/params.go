package handler

import (
	"strings"
	"time"

	"pizzahouse/internal/delivery/api/response"
	"pizzahouse/internal/delivery/api/validator"
	domainerrors "pizzahouse/internal/domain/errors"
	"pizzahouse/internal/domain/geo"
	"pizzahouse/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CoordinatesRequest is a latitude/longitude pair. Pointers make zero a valid value.
type CoordinatesRequest struct {
	Latitude  *float64 `json:"latitude" query:"lat" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" query:"lng" validate:"required,gte=-180,lte=180"`
}

func (r CoordinatesRequest) toCoordinate() geo.Coordinate {
	return geo.NewCoordinate(*r.Latitude, *r.Longitude)
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetailsf("%s must be a UUID", name)
	}

	return id, nil
}

// parseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates in loc.
func parseDate(value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	t, err := time.ParseInLocation(time.DateOnly, value, loc)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetailsf("invalid date %q", value)
	}

	return &t, nil
}

// requestError renders validation failures field by field and everything else as an AppError.
func requestError(c echo.Context, err error) error {
	if _, ok := errors.Find[*validator.ValidationError](err); ok {
		return response.ValidationFailed(c, err)
	}

	return response.HandleAppError(c, err)
}
