package echoapi

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/collegecompass/services/metrics"
)

// metricsMiddleware records the request count and latency per registered route.
// The handler error is still returned for the outer middleware, eg. the request logger.
func metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()
		err := next(ctx)
		if err != nil {
			ctx.Error(err) // commit the error response so its status is recorded
		}
		route := ctx.Path()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(ctx.Request().Method, route, ctx.Response().Status, time.Since(start))
		return err
	}
}
