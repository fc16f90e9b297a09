package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultTrackingBaseURL = "https://pizzahouse.local/track"

// TrackingEncoder renders order tracking links as PNG QR codes.
type TrackingEncoder struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewTrackingEncoder creates an encoder; errorCorrectionLevel is one of L, M, Q or H.
func NewTrackingEncoder(baseURL string, size int, errorCorrectionLevel string) *TrackingEncoder {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if baseURL == "" {
		baseURL = defaultTrackingBaseURL
	}

	return &TrackingEncoder{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// TrackingURL returns the customer-facing link for orderID.
func (e *TrackingEncoder) TrackingURL(orderID uuid.UUID) string {
	return e.baseURL + "/" + url.PathEscape(orderID.String())
}

// EncodeOrder returns the tracking link for orderID as a PNG QR code.
func (e *TrackingEncoder) EncodeOrder(orderID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(e.TrackingURL(orderID), e.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(e.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
