package calendar

import (
	"errors"
	"time"

	"github.com/trezcool/collegecompass/core"
)

var errInvalidDirection = errors.New("invalid direction")

type (
	Repository interface {
		QueryAllEvents() ([]Event, error)
	}

	Service struct {
		repo      Repository
		deadlines int
		nowFunc   func() time.Time
	}
)

func NewService(repo Repository, conf *core.Config) *Service {
	svc := &Service{repo: repo, deadlines: 3, nowFunc: time.Now}
	if conf != nil && conf.Calendar.UpcomingDeadlines > 0 {
		svc.deadlines = conf.Calendar.UpcomingDeadlines
	}
	return svc
}

// SetNowFunc overrides the clock used to pick the current month.
func (svc *Service) SetNowFunc(now func() time.Time) {
	svc.nowFunc = now
}

// Grid builds the grid of the zero-based month, with the days holding events marked.
func (svc *Service) Grid(year, month int) (Grid, error) {
	events, err := svc.repo.QueryAllEvents()
	if err != nil {
		return Grid{}, err
	}
	return BuildGrid(year, month).WithEvents(events), nil
}

// CurrentGrid builds the grid of the current month.
func (svc *Service) CurrentGrid() (Grid, error) {
	now := svc.nowFunc()
	return svc.Grid(now.Year(), int(now.Month())-1)
}

func (svc *Service) Navigate(year, month int, dir Direction) (Grid, error) {
	if !dir.IsValid() {
		return Grid{}, core.NewValidationError(
			errInvalidDirection,
			core.FieldError{Field: "direction", Error: "must be one of [prev, next]"},
		)
	}
	y, m := Navigate(year, month, dir)
	return svc.Grid(y, m)
}

// Events returns the events on date, or all of them when date is nil.
func (svc *Service) Events(date *core.Date) ([]Event, error) {
	events, err := svc.repo.QueryAllEvents()
	if err != nil {
		return nil, err
	}
	if date == nil {
		return events, nil
	}
	return On(events, *date), nil
}

func (svc *Service) UpcomingDeadlines() ([]Event, error) {
	events, err := svc.repo.QueryAllEvents()
	if err != nil {
		return nil, err
	}
	return UpcomingDeadlines(events, svc.deadlines), nil
}
