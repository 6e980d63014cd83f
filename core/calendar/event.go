package calendar

import (
	"github.com/trezcool/collegecompass/core"
	"github.com/trezcool/collegecompass/core/badge"
)

type EventType string

const (
	EventDeadline  EventType = "deadline"
	EventMeeting   EventType = "meeting"
	EventTour      EventType = "tour"
	EventInterview EventType = "interview"
	EventTest      EventType = "test"
)

type Event struct {
	ID           int       `json:"id" validate:"gt=0"`
	Title        string    `json:"title" validate:"notblank"`
	Date         core.Date `json:"date"`
	Time         string    `json:"time"`
	Type         EventType `json:"type" validate:"oneof=deadline meeting tour interview test"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description,omitempty"`
	Participants []string  `json:"participants,omitempty"`
}

func (e Event) Badge() badge.Badge {
	return badge.For(badge.KindEventType, string(e.Type))
}

// On returns, in source order, the events falling on date.
func On(events []Event, date core.Date) []Event {
	day := date.String()
	result := make([]Event, 0)
	for _, e := range events {
		if e.Date.String() == day {
			result = append(result, e)
		}
	}
	return result
}

// UpcomingDeadlines returns the first n events of type deadline, in source order.
func UpcomingDeadlines(events []Event, n int) []Event {
	if n < 0 {
		n = 0
	}
	result := make([]Event, 0, n)
	for _, e := range events {
		if len(result) >= n {
			break
		}
		if e.Type == EventDeadline {
			result = append(result, e)
		}
	}
	return result
}
