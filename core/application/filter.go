package application

import (
	"github.com/trezcool/collegecompass/core"
	"github.com/trezcool/collegecompass/core/college"
)

// Deadline windows
const (
	DeadlineUpcoming = "upcoming"
	DeadlineThisYear = "thisYear"
	DeadlineNextYear = "nextYear"

	upcomingDays = 30
)

// Progress tiers
const (
	ProgressComplete       = "complete"
	ProgressAlmostComplete = "almostComplete"
	ProgressHalfway        = "halfway"
	ProgressJustStarted    = "justStarted"
	ProgressNotStarted     = "notStarted"
)

// QueryFilter applies AND operation on its set fields.
type QueryFilter struct {
	Status   Status           `query:"status" validate:"omitempty,oneof=not_started in_progress submitted complete"`
	Category college.Category `query:"category" validate:"omitempty,oneof=reach target safety"`
	Deadline string           `query:"deadline" validate:"omitempty,oneof=upcoming thisYear nextYear"`
	Progress string           `query:"progress" validate:"omitempty,oneof=complete almostComplete halfway justStarted notStarted"`
}

func (f QueryFilter) IsEmpty() bool {
	return f == QueryFilter{}
}

// InWindow reports whether deadline falls in the window relative to today.
// Unknown windows do not filter.
func InWindow(deadline, today core.Date, window string) bool {
	switch window {
	case DeadlineUpcoming:
		return !deadline.Before(today.Time) && !deadline.After(today.AddDays(upcomingDays).Time)
	case DeadlineThisYear:
		return deadline.Year() == today.Year()
	case DeadlineNextYear:
		return deadline.Year() == today.Year()+1
	}
	return true
}

// InProgressTier reports whether a progress percentage belongs to tier.
// Unknown tiers do not filter.
func InProgressTier(progress int, tier string) bool {
	switch tier {
	case ProgressComplete:
		return progress == 100
	case ProgressAlmostComplete:
		return progress > 75
	case ProgressHalfway:
		return progress > 50
	case ProgressJustStarted:
		return progress < 25
	case ProgressNotStarted:
		return progress == 0
	}
	return true
}

func (f QueryFilter) matches(app Application, today core.Date) bool {
	if f.Status != "" && app.Status != f.Status {
		return false
	}
	if f.Category != "" && app.Category != f.Category {
		return false
	}
	if f.Deadline != "" && !InWindow(app.Deadline, today, f.Deadline) {
		return false
	}
	if f.Progress != "" && !InProgressTier(app.Progress, f.Progress) {
		return false
	}
	return true
}

// Filter returns, in source order, the applications matching f. apps is never modified.
func Filter(apps []Application, f QueryFilter, today core.Date) []Application {
	result := make([]Application, 0, len(apps))
	if f.IsEmpty() {
		return append(result, apps...)
	}
	for _, app := range apps {
		if f.matches(app, today) {
			result = append(result, app)
		}
	}
	return result
}
