// Package dashboard aggregates the other domains into the landing page.
package dashboard

import (
	"github.com/pkg/errors"

	"github.com/trezcool/collegecompass/core"
	"github.com/trezcool/collegecompass/core/application"
	"github.com/trezcool/collegecompass/core/badge"
	"github.com/trezcool/collegecompass/core/college"
	"github.com/trezcool/collegecompass/core/resource"
)

type (
	CollegeService interface {
		Favorites() ([]college.College, error)
	}

	ApplicationService interface {
		List(f application.QueryFilter) ([]application.Application, error)
		Summary() (application.Summary, error)
		Tasks(upcoming bool) ([]application.Task, error)
	}

	ResourceService interface {
		List(f resource.QueryFilter) ([]resource.Resource, error)
	}
)

type TrackedApplication struct {
	ID       int       `json:"id"`
	College  string    `json:"college"`
	Progress int       `json:"progress"`
	Deadline core.Date `json:"deadline"`
	Color    string    `json:"color"`
}

type Dashboard struct {
	PendingTasks           int                  `json:"pendingTasks"`
	ApplicationsInProgress int                  `json:"applicationsInProgress"`
	Applications           int                  `json:"applications"`
	NextDeadline           *core.Date           `json:"nextDeadline"`
	Resources              int                  `json:"resources"`
	Tasks                  []application.Task   `json:"tasks"`
	Favorites              []college.College    `json:"favorites"`
	Progress               []TrackedApplication `json:"progress"`
}

type Service struct {
	colleges     CollegeService
	applications ApplicationService
	resources    ResourceService
}

func NewService(colleges CollegeService, applications ApplicationService, resources ResourceService) *Service {
	return &Service{colleges: colleges, applications: applications, resources: resources}
}

func (svc *Service) Get() (Dashboard, error) {
	var dash Dashboard

	tasks, err := svc.applications.Tasks(true /* upcoming */)
	if err != nil {
		return dash, errors.Wrap(err, "querying tasks")
	}
	dash.Tasks = tasks
	dash.PendingTasks = len(tasks)

	apps, err := svc.applications.List(application.QueryFilter{})
	if err != nil {
		return dash, errors.Wrap(err, "querying applications")
	}
	dash.Applications = len(apps)
	dash.Progress = make([]TrackedApplication, 0, len(apps))
	for _, app := range apps {
		if app.Status == application.StatusInProgress {
			dash.ApplicationsInProgress++
		}
		dash.Progress = append(dash.Progress, TrackedApplication{
			ID:       app.ID,
			College:  app.College,
			Progress: app.Progress,
			Deadline: app.Deadline,
			Color:    badge.TrackerScale.Color(float64(app.Progress)),
		})
	}

	sum, err := svc.applications.Summary()
	if err != nil {
		return dash, errors.Wrap(err, "summarizing applications")
	}
	if sum.NextDeadline != nil {
		next := sum.NextDeadline.Date
		dash.NextDeadline = &next
	}

	resources, err := svc.resources.List(resource.QueryFilter{})
	if err != nil {
		return dash, errors.Wrap(err, "querying resources")
	}
	dash.Resources = len(resources)

	if dash.Favorites, err = svc.colleges.Favorites(); err != nil {
		return dash, errors.Wrap(err, "querying favorite colleges")
	}
	return dash, nil
}
