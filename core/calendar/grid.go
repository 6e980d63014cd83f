// Package calendar lays out month grids and looks up events on them.
package calendar

import (
	"time"

	"github.com/trezcool/collegecompass/core"
)

// Direction moves a grid one month back or forth.
type Direction string

const (
	Prev Direction = "prev"
	Next Direction = "next"
)

func (d Direction) IsValid() bool {
	return d == Prev || d == Next
}

// Cell is one day of a grid. Leading blanks are nil cells.
type Cell struct {
	Day       int       `json:"day"`
	Date      core.Date `json:"date"`
	HasEvents bool      `json:"hasEvents"`
}

type Grid struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"` // zero-based
	MonthName    string  `json:"monthName"`
	Days         int     `json:"days"`
	FirstWeekday int     `json:"firstWeekday"` // 0 = Sunday
	Cells        []*Cell `json:"cells"`
}

// firstOfMonth normalizes a zero-based month into the adjacent years, eg. (2024, 12) is January 2025.
func firstOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the day count of the zero-based month.
func DaysIn(year, month int) int {
	// day 0 of the following month is the last day of this one
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of day 1 of the zero-based month, 0 being Sunday.
func FirstWeekday(year, month int) int {
	return int(firstOfMonth(year, month).Weekday())
}

// BuildGrid lays out FirstWeekday blank cells followed by one cell per day.
func BuildGrid(year, month int) Grid {
	first := firstOfMonth(year, month)
	y, m := first.Year(), int(first.Month())-1

	g := Grid{
		Year:         y,
		Month:        m,
		MonthName:    first.Month().String(),
		Days:         DaysIn(y, m),
		FirstWeekday: int(first.Weekday()),
	}
	g.Cells = make([]*Cell, g.FirstWeekday, g.FirstWeekday+g.Days)
	for day := 1; day <= g.Days; day++ {
		g.Cells = append(g.Cells, &Cell{Day: day, Date: core.NewDate(y, first.Month(), day)})
	}
	return g
}

// Navigate returns the zero-based month next to (year, month) in dir, rolling the year over.
func Navigate(year, month int, dir Direction) (int, int) {
	switch dir {
	case Prev:
		month--
	case Next:
		month++
	}
	first := firstOfMonth(year, month)
	return first.Year(), int(first.Month()) - 1
}

// WithEvents marks the cells that have at least one event.
func (g Grid) WithEvents(events []Event) Grid {
	dates := make(map[string]struct{}, len(events))
	for _, e := range events {
		dates[e.Date.String()] = struct{}{}
	}
	cells := make([]*Cell, len(g.Cells))
	for i, c := range g.Cells {
		if c == nil {
			continue
		}
		cell := *c
		_, cell.HasEvents = dates[cell.Date.String()]
		cells[i] = &cell
	}
	g.Cells = cells
	return g
}
