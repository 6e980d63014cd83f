package application

import (
	"sort"
	"time"

	"github.com/trezcool/collegecompass/core"
)

type (
	Repository interface {
		QueryAllApplications() ([]Application, error)
		QueryAllTasks() ([]Task, error)
	}

	Service struct {
		repo    Repository
		nowFunc func() time.Time
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo, nowFunc: time.Now}
}

// SetNowFunc overrides the clock deadline windows are computed from.
func (svc *Service) SetNowFunc(now func() time.Time) {
	svc.nowFunc = now
}

func (svc *Service) today() core.Date {
	return core.DateOf(svc.nowFunc())
}

func (svc *Service) List(f QueryFilter) ([]Application, error) {
	apps, err := svc.repo.QueryAllApplications()
	if err != nil {
		return nil, err
	}
	return Filter(apps, f, svc.today()), nil
}

func (svc *Service) Summary() (Summary, error) {
	apps, err := svc.repo.QueryAllApplications()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(apps, svc.today()), nil
}

// Tasks returns the tasks ordered by due date, optionally only the pending ones.
func (svc *Service) Tasks(upcoming bool) ([]Task, error) {
	all, err := svc.repo.QueryAllTasks()
	if err != nil {
		return nil, err
	}
	tasks := make([]Task, 0, len(all))
	for _, t := range all {
		if upcoming && t.Status != TaskPending {
			continue
		}
		tasks = append(tasks, t)
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].DueDate.Before(tasks[j].DueDate.Time) })
	return tasks, nil
}
