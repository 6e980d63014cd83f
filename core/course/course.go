// Package course plans high-school coursework against per-type goals.
package course

import (
	"github.com/trezcool/collegecompass/core/badge"
)

type Type string

const (
	TypeAP      Type = "AP"
	TypeHonors  Type = "Honors"
	TypeRegular Type = "Regular"
)

// Types in display order.
var Types = []Type{TypeAP, TypeHonors, TypeRegular}

// Grades a plan can be viewed for; 8 is the year before high school.
var Grades = []int{8, 9, 10, 11, 12}

type Course struct {
	ID            string   `json:"id" validate:"notblank"`
	Name          string   `json:"name" validate:"notblank"`
	Type          Type     `json:"type" validate:"oneof=AP Honors Regular"`
	Subject       string   `json:"subject"`
	Grade         int      `json:"grade" validate:"min=9,max=12"`
	Semester      int      `json:"semester" validate:"min=1,max=2"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Recommended   bool     `json:"recommended"`
}

func (c Course) Badge() badge.Badge {
	return badge.For(badge.KindCourseType, string(c.Type))
}

type Goal struct {
	Type     Type `json:"type" validate:"oneof=AP Honors Regular"`
	Target   int  `json:"target" validate:"gte=0"`
	Achieved int  `json:"achieved" validate:"gte=0"`
}

// Percent is achieved over target; a zero target has no progress.
func (g Goal) Percent() float64 {
	if g.Target <= 0 {
		return 0
	}
	return float64(g.Achieved) / float64(g.Target) * 100
}

type GoalProgress struct {
	Goal
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

func Progress(g Goal) GoalProgress {
	pct := g.Percent()
	return GoalProgress{Goal: g, Percent: pct, Color: badge.GoalScale.Color(pct)}
}

type Plan struct {
	Goals       []GoalProgress `json:"goals"`
	Grade       int            `json:"grade,omitempty"`
	Planned     []Course       `json:"planned"`
	Recommended []Course       `json:"recommended,omitempty"`
}

// QueryFilter selects the plan to show. Grade 0 shows every grade.
type QueryFilter struct {
	Grade           int  `query:"grade" validate:"omitempty,min=8,max=12"`
	Recommendations bool `query:"recommendations"`
}

type (
	Repository interface {
		QueryAllCourses() ([]Course, error)
		QueryAllGoals() ([]Goal, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Plan splits the courses into the planned ones for the grade and the recommended ones.
func (svc *Service) Plan(f QueryFilter) (Plan, error) {
	goals, err := svc.repo.QueryAllGoals()
	if err != nil {
		return Plan{}, err
	}
	courses, err := svc.repo.QueryAllCourses()
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		Goals:   make([]GoalProgress, 0, len(goals)),
		Grade:   f.Grade,
		Planned: make([]Course, 0),
	}
	for _, g := range goals {
		plan.Goals = append(plan.Goals, Progress(g))
	}
	if f.Recommendations {
		plan.Recommended = make([]Course, 0)
	}
	for _, c := range courses {
		switch {
		case c.Recommended:
			if f.Recommendations {
				plan.Recommended = append(plan.Recommended, c)
			}
		case f.Grade == 0 || c.Grade == f.Grade:
			plan.Planned = append(plan.Planned, c)
		}
	}
	return plan, nil
}
