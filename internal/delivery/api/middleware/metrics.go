package middleware

import (
	"time"

	"pizzahouse/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request latency by matched route. Errors are rendered here
// so the recorded status is the one sent to the client.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
