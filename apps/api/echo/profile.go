package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/collegecompass/core/profile"
)

type ProfileService interface {
	Get() (profile.View, error)
	Update(upd profile.UpdateStudent) (profile.View, error)
}

type profileAPI struct {
	svc ProfileService
}

func registerProfileAPI(g *echo.Group, svc ProfileService) {
	api := profileAPI{svc: svc}

	g.GET("/profile", api.retrieve)
	g.PUT("/profile", api.update)
}

func (api *profileAPI) retrieve(ctx echo.Context) error {
	view, err := api.svc.Get()
	if err != nil {
		return errors.Wrap(err, "getting profile")
	}
	return ctx.JSON(http.StatusOK, view)
}

func (api *profileAPI) update(ctx echo.Context) error {
	var data profile.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	view, err := api.svc.Update(data)
	if err != nil {
		return errors.Wrap(err, "updating profile")
	}
	return ctx.JSON(http.StatusOK, view)
}
