package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/collegecompass/core/profile"
)

func Test_profileAPI(t *testing.T) {
	app, c := setup(t)

	before, err := c.Profile.Get()
	require.NoError(t, err)
	assert.Equal(t, "EW", before.Initials)

	runTests(t, app, []httpTest{
		{name: "retrieve", path: "/v1/profile", wantData: marchallObj(t, before)},
		{
			name: "blank name", method: http.MethodPut, path: "/v1/profile", body: []byte(`{"name": ""}`),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"name": "this field cannot be blank"}),
		},
		{
			name: "invalid scores", method: http.MethodPut, path: "/v1/profile", body: []byte(`{"sat": 200, "act": 40, "email": "emma"}`),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{
				"sat":   "sat must be 400 or greater",
				"act":   "act must be 36 or less",
				"email": "email must be a valid email address",
			}),
		},
		{
			name: "wrong type", method: http.MethodPut, path: "/v1/profile", body: []byte(`{"sat": "high"}`),
			wantCode: http.StatusBadRequest,
		},
	})

	// nothing was applied by the rejected edits
	got, err := c.Profile.Get()
	require.NoError(t, err)
	assert.Equal(t, before, got)

	req, rec := newRequest(http.MethodPut, "/v1/profile", []byte(`{"name": "Emma Grace Watson", "sat": 1540, "gpa": 4.3}`))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var view profile.View
	decode(t, rec, &view)
	assert.Equal(t, "Emma Grace Watson", view.Name)
	assert.Equal(t, "EGW", view.Initials)
	assert.Equal(t, "1540", view.SAT)
	assert.Equal(t, "4.3", view.GPA)
	assert.Equal(t, before.ACT, view.ACT)
	assert.Equal(t, before.Activities, view.Activities)
}
