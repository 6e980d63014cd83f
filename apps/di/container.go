// Package di builds the object graph shared by the API server and the admin CLI.
package di

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/collegecompass/core"
	"github.com/trezcool/collegecompass/core/application"
	"github.com/trezcool/collegecompass/core/calendar"
	"github.com/trezcool/collegecompass/core/college"
	"github.com/trezcool/collegecompass/core/course"
	"github.com/trezcool/collegecompass/core/dashboard"
	"github.com/trezcool/collegecompass/core/document"
	"github.com/trezcool/collegecompass/core/profile"
	"github.com/trezcool/collegecompass/core/resource"
	"github.com/trezcool/collegecompass/core/ui"
	"github.com/trezcool/collegecompass/storage/database/inmem"
	"github.com/trezcool/collegecompass/storage/seed"
)

type Container struct {
	Conf       *core.Config
	Logger     core.Logger
	Validate   *validator.Validate
	Translator ut.Translator
	Dataset    *seed.Dataset
	DB         *inmemdb.DB

	Colleges     *college.Service
	Applications *application.Service
	Calendar     *calendar.Service
	Documents    *document.Service
	Courses      *course.Service
	Profile      *profile.Service
	Resources    *resource.Service
	Dashboard    *dashboard.Service
	UI           *ui.State
}

func NewValidate() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	profile.RegisterValidators(validate, translator)
	return validate, translator
}

// New loads the embedded seed into the in-memory DB and sets up every service on top of it.
func New(conf *core.Config, logger core.Logger) (*Container, error) {
	c := &Container{Conf: conf, Logger: logger}
	c.Validate, c.Translator = NewValidate()

	var err error
	if c.Dataset, err = seed.Load(c.Validate); err != nil {
		return nil, errors.Wrap(err, "loading seed")
	}
	if c.DB, err = inmemdb.Open(c.Dataset); err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	if c.Colleges, err = college.NewService(inmemdb.NewCollegeRepository(c.DB), conf); err != nil {
		return nil, errors.Wrap(err, "setting up college service")
	}
	c.Applications = application.NewService(inmemdb.NewApplicationRepository(c.DB))
	c.Calendar = calendar.NewService(inmemdb.NewEventRepository(c.DB), conf)
	c.Documents = document.NewService(inmemdb.NewDocumentRepository(c.DB))
	c.Courses = course.NewService(inmemdb.NewCourseRepository(c.DB))
	c.Profile = profile.NewService(inmemdb.NewStudentRepository(c.DB), c.Validate)
	c.Resources = resource.NewService(inmemdb.NewResourceRepository(c.DB))
	c.Dashboard = dashboard.NewService(c.Colleges, c.Applications, c.Resources)
	c.UI = ui.NewState()
	return c, nil
}
