package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	. "github.com/trezcool/collegecompass/apps/api/echo"
	"github.com/trezcool/collegecompass/apps/di"
	"github.com/trezcool/collegecompass/core"
	logsvc "github.com/trezcool/collegecompass/services/logger"
)

// today is the clock of every test server: the seed deadlines start three weeks later.
var today = time.Date(2024, time.October, 10, 9, 30, 0, 0, time.UTC)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

// setup returns a server on top of a freshly loaded seed.
func setup(t *testing.T, configure ...func(*core.Config)) (*Server, *di.Container) {
	conf := &core.Config{TestMode: true}
	conf.Server.DisableReqLogs = true
	for _, fn := range configure {
		fn(conf)
	}

	c, err := di.New(conf, logsvc.NewNopLogger())
	require.NoError(t, err)
	now := func() time.Time { return today }
	c.Applications.SetNowFunc(now)
	c.Calendar.SetNowFunc(now)

	return NewServer(ServerDeps{
		Conf:         conf,
		Logger:       c.Logger,
		Validate:     c.Validate,
		Translator:   c.Translator,
		CollegeSvc:   c.Colleges,
		AppSvc:       c.Applications,
		CalendarSvc:  c.Calendar,
		DocumentSvc:  c.Documents,
		CourseSvc:    c.Courses,
		ProfileSvc:   c.Profile,
		ResourceSvc:  c.Resources,
		DashboardSvc: c.Dashboard,
		UI:           c.UI,
	}), c
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

// runTests serves every test on app, defaulting to GET and 200 OK.
func runTests(t *testing.T, app http.Handler, tests []httpTest) {
	for _, tt := range tests {
		if tt.method == "" {
			tt.method = http.MethodGet
		}
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}
