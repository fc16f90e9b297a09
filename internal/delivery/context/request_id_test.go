package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))

	SetRequestID(c, "req-7")
	assert.Equal(t, "req-7", GetRequestID(c))
}

func TestCarry(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	parent, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	parent = WithLogger(WithRequestID(parent, "req-9"), logger)

	carried := Carry(parent, context.Background())
	<-parent.Done()

	assert.Equal(t, "req-9", GetRequestIDFromContext(carried))
	assert.Same(t, logger, GetLogger(carried))
	assert.NoError(t, carried.Err())
}

func TestCarry_EmptySource(t *testing.T) {
	carried := Carry(context.Background(), context.Background())

	assert.Empty(t, GetRequestIDFromContext(carried))
	assert.Nil(t, GetLogger(carried))

	fallback := slog.New(slog.DiscardHandler)
	assert.Same(t, fallback, GetLoggerOrDefault(carried, fallback))
}
