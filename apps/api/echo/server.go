package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trezcool/collegecompass/core"
	"github.com/trezcool/collegecompass/core/ui"
)

type (
	ServerDeps struct {
		Conf         *core.Config
		Logger       core.Logger
		Validate     *validator.Validate
		Translator   ut.Translator
		CollegeSvc   CollegeService
		AppSvc       ApplicationService
		CalendarSvc  CalendarService
		DocumentSvc  DocumentService
		CourseSvc    CourseService
		ProfileSvc   ProfileService
		ResourceSvc  ResourceService
		DashboardSvc DashboardService
		UI           *ui.State
	}

	Server struct {
		app      *echo.Echo
		address  string
		errors   chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		app:      echo.New(),
		address:  deps.Conf.Server.Address,
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)

	s.app.HideBanner = true
	s.app.Debug = deps.Conf.Debug
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(deps.Logger, deps.Translator, s.signalShutdown)

	useMiddleware(s.app, deps.Conf)

	s.app.GET("/", home)
	s.app.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.app.Group("/v1")
	registerCollegeAPI(v1, deps.CollegeSvc, deps.Validate)
	registerApplicationAPI(v1, deps.AppSvc, deps.Validate)
	registerCalendarAPI(v1, deps.CalendarSvc)
	registerDocumentAPI(v1, deps.DocumentSvc)
	registerCourseAPI(v1, deps.CourseSvc, deps.Validate)
	registerProfileAPI(v1, deps.ProfileSvc)
	registerResourceAPI(v1, deps.ResourceSvc, deps.Validate)
	registerDashboardAPI(v1, deps.DashboardSvc)
	registerUIAPI(v1, deps.UI)

	return s
}

// useMiddleware installs the middleware chain; metrics wrap Recover so that panics are counted.
func useMiddleware(app *echo.Echo, conf *core.Config) {
	app.Pre(middleware.RemoveTrailingSlash())
	app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	if !conf.Server.DisableReqLogs {
		app.Use(middleware.Logger())
	}
	app.Use(metricsMiddleware)
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
}

func (s *Server) Start() {
	if err := s.app.Start(s.address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already shutting down
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to CollegeCompass API!")
}
