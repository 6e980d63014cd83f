package echoapi

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/collegecompass/core"
)

const (
	integerText = "must be an integer"
	booleanText = "must be a boolean"
	dateText    = "must be a date formatted as YYYY-MM-DD"
)

type cleaner interface {
	Clean()
}

// bindQuery binds the query params into filter, cleans it when it knows how, then validates it.
func bindQuery(ctx echo.Context, validate *validator.Validate, filter interface{}) error {
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding query")
	}
	if c, ok := filter.(cleaner); ok {
		c.Clean()
	}
	return validate.Struct(filter)
}

// queryInt reads an optional integer param; ok is false when it is absent.
func queryInt(ctx echo.Context, name string) (val int, ok bool, err error) {
	s := strings.TrimSpace(ctx.QueryParam(name))
	if s == "" {
		return 0, false, nil
	}
	if val, err = strconv.Atoi(s); err != nil {
		return 0, false, core.NewValidationError(err, core.FieldError{Field: name, Error: integerText})
	}
	return val, true, nil
}

func queryBool(ctx echo.Context, name string) (bool, error) {
	s := strings.TrimSpace(ctx.QueryParam(name))
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, core.NewValidationError(err, core.FieldError{Field: name, Error: booleanText})
	}
	return b, nil
}

func queryDate(ctx echo.Context, name string) (*core.Date, error) {
	s := strings.TrimSpace(ctx.QueryParam(name))
	if s == "" {
		return nil, nil
	}
	d, err := core.ParseDate(s)
	if err != nil {
		return nil, core.NewValidationError(err, core.FieldError{Field: name, Error: dateText})
	}
	return &d, nil
}

func paramID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, core.NewValidationError(err, core.FieldError{Field: "id", Error: integerText})
	}
	return id, nil
}
