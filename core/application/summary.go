package application

import (
	"github.com/trezcool/collegecompass/core"
	"github.com/trezcool/collegecompass/core/college"
)

type NextDeadline struct {
	Date     core.Date `json:"date"`
	Colleges []string  `json:"colleges"`
}

type TaskProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"` // floored
}

type Summary struct {
	NextDeadline *NextDeadline           `json:"nextDeadline"`
	Tasks        TaskProgress            `json:"tasks"`
	Total        int                     `json:"total"`
	Categories   map[college.Category]int `json:"categories"`
}

// Summarize aggregates the applications list header.
// The next deadline is the earliest one not before today; it is nil once every deadline has passed.
func Summarize(apps []Application, today core.Date) Summary {
	sum := Summary{
		Total:      len(apps),
		Categories: make(map[college.Category]int, len(college.Categories)),
	}
	for _, cat := range college.Categories {
		sum.Categories[cat] = 0
	}

	for _, app := range apps {
		sum.Tasks.Completed += app.Tasks.Completed
		sum.Tasks.Total += app.Tasks.Total
		sum.Categories[app.Category]++

		if app.Deadline.Before(today.Time) {
			continue
		}
		switch {
		case sum.NextDeadline == nil || app.Deadline.Before(sum.NextDeadline.Date.Time):
			sum.NextDeadline = &NextDeadline{Date: app.Deadline, Colleges: []string{app.College}}
		case app.Deadline.Equal(sum.NextDeadline.Date.Time):
			sum.NextDeadline.Colleges = append(sum.NextDeadline.Colleges, app.College)
		}
	}

	if sum.Tasks.Total > 0 {
		sum.Tasks.Percent = sum.Tasks.Completed * 100 / sum.Tasks.Total
	}
	return sum
}
