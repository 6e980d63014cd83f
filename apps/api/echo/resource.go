package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/collegecompass/core/resource"
	"github.com/trezcool/collegecompass/services/metrics"
)

type ResourceService interface {
	Categories() []resource.CategoryInfo
	List(f resource.QueryFilter) ([]resource.Resource, error)
	Featured() (*resource.Resource, error)
	ToggleSaved(id int) (resource.Resource, error)
}

type resourceAPI struct {
	svc      ResourceService
	validate *validator.Validate
}

// ResourceList is the library page: the featured resource (if any) and the filtered list.
type ResourceList struct {
	Featured  *resource.Resource  `json:"featured"`
	Resources []resource.Resource `json:"resources"`
}

func registerResourceAPI(g *echo.Group, svc ResourceService, validate *validator.Validate) {
	api := resourceAPI{svc: svc, validate: validate}

	rg := g.Group("/resources")
	rg.GET("", api.list)
	rg.GET("/categories", api.categories)
	rg.POST("/:id/save", api.toggleSaved)
}

func (api *resourceAPI) categories(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Categories())
}

func (api *resourceAPI) list(ctx echo.Context) error {
	var filter resource.QueryFilter
	if err := bindQuery(ctx, api.validate, &filter); err != nil {
		return err
	}
	resources, err := api.svc.List(filter)
	if err != nil {
		return errors.Wrap(err, "querying resources")
	}
	featured, err := api.svc.Featured()
	if err != nil {
		return errors.Wrap(err, "querying featured resource")
	}
	return ctx.JSON(http.StatusOK, ResourceList{Featured: featured, Resources: resources})
}

func (api *resourceAPI) toggleSaved(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	r, err := api.svc.ToggleSaved(id)
	if err != nil {
		if errors.Cause(err) == resource.ErrNotFound {
			return notFound(err)
		}
		return errors.Wrap(err, "toggling saved resource")
	}
	metrics.Toggles.WithLabelValues("saved_resource").Inc()
	return ctx.JSON(http.StatusOK, r)
}
