package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/collegecompass/core/dashboard"
	"github.com/trezcool/collegecompass/core/ui"
	"github.com/trezcool/collegecompass/services/metrics"
)

type DashboardService interface {
	Get() (dashboard.Dashboard, error)
}

func registerDashboardAPI(g *echo.Group, svc DashboardService) {
	g.GET("/dashboard", func(ctx echo.Context) error {
		dash, err := svc.Get()
		if err != nil {
			return errors.Wrap(err, "building dashboard")
		}
		return ctx.JSON(http.StatusOK, dash)
	})
}

func registerUIAPI(g *echo.Group, state *ui.State) {
	ug := g.Group("/ui")
	ug.GET("", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, state.Snapshot())
	})
	ug.POST("/sidebar", func(ctx echo.Context) error {
		metrics.Toggles.WithLabelValues("sidebar").Inc()
		return ctx.JSON(http.StatusOK, state.ToggleSidebar())
	})
	ug.POST("/theme", func(ctx echo.Context) error {
		metrics.Toggles.WithLabelValues("theme").Inc()
		return ctx.JSON(http.StatusOK, state.ToggleTheme())
	})
}
