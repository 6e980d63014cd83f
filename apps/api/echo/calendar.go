package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/collegecompass/core"
	"github.com/trezcool/collegecompass/core/calendar"
)

const requiredText = "this field is required"

type CalendarService interface {
	Grid(year, month int) (calendar.Grid, error)
	CurrentGrid() (calendar.Grid, error)
	Navigate(year, month int, dir calendar.Direction) (calendar.Grid, error)
	Events(date *core.Date) ([]calendar.Event, error)
	UpcomingDeadlines() ([]calendar.Event, error)
}

type calendarAPI struct {
	svc CalendarService
}

func registerCalendarAPI(g *echo.Group, svc CalendarService) {
	api := calendarAPI{svc: svc}

	cg := g.Group("/calendar")
	cg.GET("/grid", api.grid)
	cg.GET("/grid/navigate", api.navigate)
	cg.GET("/events", api.events)
	cg.GET("/deadlines", api.deadlines)
}

// yearMonth reads the year and zero-based month params, which go together.
func yearMonth(ctx echo.Context) (year, month int, ok bool, err error) {
	year, hasYear, err := queryInt(ctx, "year")
	if err != nil {
		return 0, 0, false, err
	}
	month, hasMonth, err := queryInt(ctx, "month")
	if err != nil {
		return 0, 0, false, err
	}
	switch {
	case hasYear && !hasMonth:
		return 0, 0, false, core.NewValidationError(nil, core.FieldError{Field: "month", Error: requiredText})
	case hasMonth && !hasYear:
		return 0, 0, false, core.NewValidationError(nil, core.FieldError{Field: "year", Error: requiredText})
	}
	return year, month, hasYear, nil
}

func (api *calendarAPI) grid(ctx echo.Context) error {
	year, month, ok, err := yearMonth(ctx)
	if err != nil {
		return err
	}
	var grid calendar.Grid
	if ok {
		grid, err = api.svc.Grid(year, month)
	} else {
		grid, err = api.svc.CurrentGrid()
	}
	if err != nil {
		return errors.Wrap(err, "building grid")
	}
	return ctx.JSON(http.StatusOK, grid)
}

func (api *calendarAPI) navigate(ctx echo.Context) error {
	year, month, ok, err := yearMonth(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return core.NewValidationError(nil,
			core.FieldError{Field: "year", Error: requiredText},
			core.FieldError{Field: "month", Error: requiredText},
		)
	}
	grid, err := api.svc.Navigate(year, month, calendar.Direction(ctx.QueryParam("direction")))
	if err != nil {
		return errors.Wrap(err, "navigating grid")
	}
	return ctx.JSON(http.StatusOK, grid)
}

func (api *calendarAPI) events(ctx echo.Context) error {
	date, err := queryDate(ctx, "date")
	if err != nil {
		return err
	}
	events, err := api.svc.Events(date)
	if err != nil {
		return errors.Wrap(err, "querying events")
	}
	return ctx.JSON(http.StatusOK, events)
}

func (api *calendarAPI) deadlines(ctx echo.Context) error {
	events, err := api.svc.UpcomingDeadlines()
	if err != nil {
		return errors.Wrap(err, "querying deadlines")
	}
	return ctx.JSON(http.StatusOK, events)
}
