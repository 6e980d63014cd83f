package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/collegecompass/core/college"
	"github.com/trezcool/collegecompass/services/metrics"
)

type CollegeService interface {
	Search(f college.Filters) (college.SearchResult, error)
	Facets() college.Facets
	GetByID(id int) (college.College, error)
	Favorites() ([]college.College, error)
	ToggleFavorite(id int) (college.College, error)
}

type collegeAPI struct {
	svc      CollegeService
	validate *validator.Validate
}

func registerCollegeAPI(g *echo.Group, svc CollegeService, validate *validator.Validate) {
	api := collegeAPI{svc: svc, validate: validate}

	cg := g.Group("/colleges")
	cg.GET("", api.search)
	cg.GET("/facets", api.facets)
	cg.GET("/favorites", api.favorites)
	cg.GET("/:id", api.retrieve)
	cg.POST("/:id/favorite", api.toggleFavorite)
}

func (api *collegeAPI) search(ctx echo.Context) error {
	var filters college.Filters
	if err := bindQuery(ctx, api.validate, &filters); err != nil {
		return err
	}
	res, err := api.svc.Search(filters)
	if err != nil {
		return errors.Wrap(err, "searching colleges")
	}
	metrics.ObserveSearch(res.Total, res.Unsupported)
	return ctx.JSON(http.StatusOK, res)
}

func (api *collegeAPI) facets(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Facets())
}

func (api *collegeAPI) favorites(ctx echo.Context) error {
	favs, err := api.svc.Favorites()
	if err != nil {
		return errors.Wrap(err, "querying favorites")
	}
	return ctx.JSON(http.StatusOK, favs)
}

func (api *collegeAPI) retrieve(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	c, err := api.svc.GetByID(id)
	if err != nil {
		if errors.Cause(err) == college.ErrNotFound {
			return notFound(err)
		}
		return errors.Wrap(err, "getting college")
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *collegeAPI) toggleFavorite(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	c, err := api.svc.ToggleFavorite(id)
	if err != nil {
		if errors.Cause(err) == college.ErrNotFound {
			return notFound(err)
		}
		return errors.Wrap(err, "toggling favorite")
	}
	metrics.Toggles.WithLabelValues("favorite").Inc()
	return ctx.JSON(http.StatusOK, c)
}
