package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/collegecompass/core/course"
)

func getPlan(t *testing.T, app http.Handler, path string) course.Plan {
	req, rec := newRequest(http.MethodGet, path)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var plan course.Plan
	decode(t, rec, &plan)
	return plan
}

func courseIDs(courses []course.Course) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func Test_courseAPI_plan(t *testing.T) {
	app, _ := setup(t)

	plan := getPlan(t, app, "/v1/courses")
	assert.Equal(t, []string{"honors-geo", "honors-bio"}, courseIDs(plan.Planned))
	assert.Nil(t, plan.Recommended)
	require.Len(t, plan.Goals, 3)
	assert.Equal(t, course.TypeAP, plan.Goals[0].Type)
	assert.Equal(t, 37.5, plan.Goals[0].Percent)

	plan = getPlan(t, app, "/v1/courses?grade=9&recommendations=true")
	assert.Equal(t, 9, plan.Grade)
	assert.Equal(t, []string{"honors-geo", "honors-bio"}, courseIDs(plan.Planned))
	assert.Equal(t, []string{"ap-calc-ab", "ap-bio", "ap-lang"}, courseIDs(plan.Recommended))

	plan = getPlan(t, app, "/v1/courses?grade=12")
	assert.Empty(t, plan.Planned)

	runTests(t, app, []httpTest{
		{
			name: "grade too low", path: "/v1/courses?grade=7", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"grade": "grade must be 8 or greater"}),
		},
		{
			name: "bad grade", path: "/v1/courses?grade=senior", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"grade": "must be an integer"}),
		},
	})
}
