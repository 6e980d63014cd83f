package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/collegecompass/core/document"
)

func Test_documentAPI_list(t *testing.T) {
	app, _ := setup(t)

	tests := []struct {
		name    string
		path    string
		wantIDs []int
	}{
		{name: "all", path: "/v1/documents", wantIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{name: "folder", path: "/v1/documents?folder=Essays", wantIDs: []int{1, 2, 3, 4, 5}},
		{name: "folder ignores case", path: "/v1/documents?folder=financial", wantIDs: []int{9}},
		{name: "empty folder", path: "/v1/documents?folder=Photos", wantIDs: []int{}},
		{name: "search", path: "/v1/documents?search=ESSAY", wantIDs: []int{2, 3, 4}},
		{name: "order by -date_added", path: "/v1/documents?folder=Essays&ordering=-date_added", wantIDs: []int{5, 4, 3, 2, 1}},
		{name: "order by name", path: "/v1/documents?folder=Essays&ordering=name", wantIDs: []int{1, 3, 5, 4, 2}},
		{name: "order by date_added", path: "/v1/documents?ordering=date_added", wantIDs: []int{7, 6, 8, 1, 2, 3, 4, 9, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var docs []document.Document
			decode(t, rec, &docs)
			ids := make([]int, 0, len(docs))
			for _, d := range docs {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	runTests(t, app, []httpTest{
		{name: "folders", path: "/v1/documents/folders", wantData: marchallObj(t, document.Folders)},
		{
			name: "unknown folder", path: "/v1/documents?folder=Yearbook", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"folder": "unknown folder"}),
		},
		{
			name: "unknown ordering", path: "/v1/documents?ordering=size", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"ordering": "cannot order by size"}),
		},
	})
}
