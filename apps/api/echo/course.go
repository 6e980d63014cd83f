package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/collegecompass/core/course"
)

type CourseService interface {
	Plan(f course.QueryFilter) (course.Plan, error)
}

type courseAPI struct {
	svc      CourseService
	validate *validator.Validate
}

func registerCourseAPI(g *echo.Group, svc CourseService, validate *validator.Validate) {
	api := courseAPI{svc: svc, validate: validate}
	g.GET("/courses", api.plan)
}

func (api *courseAPI) plan(ctx echo.Context) error {
	grade, _, err := queryInt(ctx, "grade")
	if err != nil {
		return err
	}
	recommendations, err := queryBool(ctx, "recommendations")
	if err != nil {
		return err
	}
	filter := course.QueryFilter{Grade: grade, Recommendations: recommendations}
	if err = api.validate.Struct(filter); err != nil {
		return err
	}

	plan, err := api.svc.Plan(filter)
	if err != nil {
		return errors.Wrap(err, "planning courses")
	}
	return ctx.JSON(http.StatusOK, plan)
}
