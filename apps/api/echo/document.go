package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/collegecompass/core/document"
)

type DocumentService interface {
	Folders() []document.Folder
	List(f document.QueryFilter) ([]document.Document, error)
}

type documentAPI struct {
	svc DocumentService
}

func registerDocumentAPI(g *echo.Group, svc DocumentService) {
	api := documentAPI{svc: svc}

	dg := g.Group("/documents")
	dg.GET("", api.list)
	dg.GET("/folders", api.folders)
}

func (api *documentAPI) folders(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Folders())
}

func (api *documentAPI) list(ctx echo.Context) error {
	var filter document.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to document.QueryFilter")
	}
	docs, err := api.svc.List(filter)
	if err != nil {
		return errors.Wrap(err, "querying documents")
	}
	return ctx.JSON(http.StatusOK, docs)
}
