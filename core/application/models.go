package application

import (
	"github.com/trezcool/collegecompass/core"
	"github.com/trezcool/collegecompass/core/badge"
	"github.com/trezcool/collegecompass/core/college"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusSubmitted  Status = "submitted"
	StatusComplete   Status = "complete"
)

type TaskCount struct {
	Total     int `json:"total" validate:"gte=0"`
	Completed int `json:"completed" validate:"gte=0,ltefield=Total"`
}

type Application struct {
	ID           int              `json:"id" validate:"gt=0"`
	College      string           `json:"college" validate:"notblank"`
	Logo         string           `json:"logo" validate:"omitempty,uri"`
	Deadline     core.Date        `json:"deadline"`
	Status       Status           `json:"status" validate:"oneof=not_started in_progress submitted complete"`
	Progress     int              `json:"progress" validate:"gte=0,lte=100"`
	Tasks        TaskCount        `json:"tasks"`
	Requirements []string         `json:"requirements" validate:"dive,notblank"`
	Category     college.Category `json:"category" validate:"oneof=reach target safety"`
}

func (app Application) StatusBadge() badge.Badge {
	return badge.For(badge.KindStatus, string(app.Status))
}

// ProgressColor is the colour of the application list progress bar.
func (app Application) ProgressColor() string {
	return badge.ApplicationScale.Color(float64(app.Progress))
}

type (
	TaskType   string
	TaskStatus string
)

const (
	TaskEssay          TaskType = "essay"
	TaskRecommendation TaskType = "recommendation"
	TaskApplication    TaskType = "application"
	TaskInterview      TaskType = "interview"
	TaskDocumentation  TaskType = "documentation"

	TaskCompleted TaskStatus = "completed"
	TaskPending   TaskStatus = "pending"
	TaskOverdue   TaskStatus = "overdue"
)

type Task struct {
	ID      int        `json:"id" validate:"gt=0"`
	Title   string     `json:"title" validate:"notblank"`
	DueDate core.Date  `json:"dueDate"`
	College string     `json:"college"`
	Type    TaskType   `json:"type" validate:"oneof=essay recommendation application interview documentation"`
	Status  TaskStatus `json:"status" validate:"oneof=completed pending overdue"`
}

func (t Task) Badge() badge.Badge {
	return badge.For(badge.KindTaskType, string(t.Type))
}
