package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/collegecompass/core/application"
)

type ApplicationService interface {
	List(f application.QueryFilter) ([]application.Application, error)
	Summary() (application.Summary, error)
	Tasks(upcoming bool) ([]application.Task, error)
}

type applicationAPI struct {
	svc      ApplicationService
	validate *validator.Validate
}

func registerApplicationAPI(g *echo.Group, svc ApplicationService, validate *validator.Validate) {
	api := applicationAPI{svc: svc, validate: validate}

	g.GET("/applications", api.list)
	g.GET("/applications/summary", api.summary)
	g.GET("/tasks", api.tasks)
}

func (api *applicationAPI) list(ctx echo.Context) error {
	var filter application.QueryFilter
	if err := bindQuery(ctx, api.validate, &filter); err != nil {
		return err
	}
	apps, err := api.svc.List(filter)
	if err != nil {
		return errors.Wrap(err, "querying applications")
	}
	return ctx.JSON(http.StatusOK, apps)
}

func (api *applicationAPI) summary(ctx echo.Context) error {
	sum, err := api.svc.Summary()
	if err != nil {
		return errors.Wrap(err, "summarizing applications")
	}
	return ctx.JSON(http.StatusOK, sum)
}

func (api *applicationAPI) tasks(ctx echo.Context) error {
	upcoming, err := queryBool(ctx, "upcoming")
	if err != nil {
		return err
	}
	tasks, err := api.svc.Tasks(upcoming)
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	return ctx.JSON(http.StatusOK, tasks)
}
