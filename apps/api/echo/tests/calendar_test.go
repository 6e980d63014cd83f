package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/collegecompass/core/calendar"
)

func getGrid(t *testing.T, app http.Handler, path string) calendar.Grid {
	req, rec := newRequest(http.MethodGet, path)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var grid calendar.Grid
	decode(t, rec, &grid)
	return grid
}

func Test_calendarAPI_grid(t *testing.T) {
	app, _ := setup(t)

	// current month: October 2024 starts on a Tuesday
	grid := getGrid(t, app, "/v1/calendar/grid")
	assert.Equal(t, 2024, grid.Year)
	assert.Equal(t, 9, grid.Month)
	assert.Equal(t, "October", grid.MonthName)
	assert.Equal(t, 31, grid.Days)
	assert.Equal(t, 2, grid.FirstWeekday)
	require.Len(t, grid.Cells, 33)
	assert.Nil(t, grid.Cells[0])
	assert.Nil(t, grid.Cells[1])
	assert.Equal(t, 1, grid.Cells[2].Day)

	var withEvents []int
	for _, c := range grid.Cells {
		if c != nil && c.HasEvents {
			withEvents = append(withEvents, c.Day)
		}
	}
	assert.Equal(t, []int{15, 18, 21}, withEvents)

	// February of a leap year starting on a Thursday
	grid = getGrid(t, app, "/v1/calendar/grid?year=2024&month=1")
	assert.Equal(t, 29, grid.Days)
	assert.Equal(t, 4, grid.FirstWeekday)

	// month 12 normalizes into the next year
	grid = getGrid(t, app, "/v1/calendar/grid?year=2024&month=12")
	assert.Equal(t, 2025, grid.Year)
	assert.Equal(t, 0, grid.Month)
	assert.Equal(t, "January", grid.MonthName)

	runTests(t, app, []httpTest{
		{
			name: "year without month", path: "/v1/calendar/grid?year=2024", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"month": "this field is required"}),
		},
		{
			name: "bad month", path: "/v1/calendar/grid?year=2024&month=oct", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"month": "must be an integer"}),
		},
	})
}

func Test_calendarAPI_navigate(t *testing.T) {
	app, _ := setup(t)

	grid := getGrid(t, app, "/v1/calendar/grid/navigate?year=2024&month=0&direction=prev")
	assert.Equal(t, 2023, grid.Year)
	assert.Equal(t, 11, grid.Month)

	grid = getGrid(t, app, "/v1/calendar/grid/navigate?year=2024&month=11&direction=next")
	assert.Equal(t, 2025, grid.Year)
	assert.Equal(t, 0, grid.Month)

	runTests(t, app, []httpTest{
		{
			name: "bad direction", path: "/v1/calendar/grid/navigate?year=2024&month=3&direction=up", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"direction": "must be one of [prev, next]"}),
		},
		{
			name: "missing month", path: "/v1/calendar/grid/navigate?direction=next", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"year": "this field is required", "month": "this field is required"}),
		},
	})
}

func eventIDs(t *testing.T, app http.Handler, path string) []int {
	req, rec := newRequest(http.MethodGet, path)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var events []calendar.Event
	decode(t, rec, &events)
	ids := make([]int, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func Test_calendarAPI_events(t *testing.T) {
	app, _ := setup(t)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, eventIDs(t, app, "/v1/calendar/events"))
	assert.Equal(t, []int{1, 6}, eventIDs(t, app, "/v1/calendar/events?date=2024-11-01"))
	assert.Equal(t, []int{}, eventIDs(t, app, "/v1/calendar/events?date=2024-11-02"))
	assert.Equal(t, []int{1, 6, 7}, eventIDs(t, app, "/v1/calendar/deadlines"))

	runTests(t, app, []httpTest{
		{
			name: "bad date", path: "/v1/calendar/events?date=11/01/2024", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"date": "must be a date formatted as YYYY-MM-DD"}),
		},
	})
}
