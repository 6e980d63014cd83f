package seed

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/collegecompass/core"
	"github.com/trezcool/collegecompass/core/college"
)

func newValidate() *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, core.NewTranslator())
	return validate
}

func TestLoad(t *testing.T) {
	ds, err := Load(newValidate())
	require.NoError(t, err)

	assert.Len(t, ds.Colleges, 10)
	assert.Equal(t, "Stanford University", ds.Colleges[0].Name)
	assert.Len(t, ds.Applications, 5)
	assert.NotEmpty(t, ds.Tasks)
	assert.NotEmpty(t, ds.Events)
	assert.NotEmpty(t, ds.Documents)
	assert.Len(t, ds.Goals, 3)
	assert.NotEmpty(t, ds.Courses)
	assert.Equal(t, "Emma Watson", ds.Student.Name)
	assert.Len(t, ds.Resources, 6)

	var unparseable int
	for _, c := range ds.Colleges {
		if _, ok := college.ParseAcceptance(c.Acceptance); !ok {
			unparseable++
		}
	}
	assert.Equal(t, 1, unparseable)
}

// seedFS copies the embedded seed into a map so tests can break single files.
func seedFS(t *testing.T, overrides map[string]string) fstest.MapFS {
	sub, err := fs.Sub(embedded, "data")
	require.NoError(t, err)
	entries, err := fs.ReadDir(sub, ".")
	require.NoError(t, err)

	mfs := make(fstest.MapFS, len(entries))
	for _, e := range entries {
		b, err := fs.ReadFile(sub, e.Name())
		require.NoError(t, err)
		mfs[e.Name()] = &fstest.MapFile{Data: b}
	}
	for name, data := range overrides {
		mfs[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return mfs
}

const validCollege = `{"id": 1, "name": "Stanford University", "location": "Stanford, CA", "image": "https://example.com/s.jpg",
	"acceptance": "4%", "enrollment": "17,249", "tuition": "$56,169", "programs": ["Engineering"], "isFavorite": false, "category": "reach"}`

func TestLoadFS(t *testing.T) {
	tests := []struct {
		name       string
		colleges   string
		wantSchema bool
		wantErr    string
	}{
		{name: "valid", colleges: "[" + validCollege + "]"},
		{name: "bad category", colleges: `[{"id": 1, "name": "X", "location": "", "image": "", "acceptance": "4%", "enrollment": "", "tuition": "", "programs": [], "isFavorite": false, "category": "dream"}]`, wantSchema: true},
		{name: "missing name", colleges: `[{"id": 1, "location": "", "image": "", "acceptance": "4%", "enrollment": "", "tuition": "", "programs": [], "isFavorite": false, "category": "reach"}]`, wantSchema: true},
		{name: "unknown field", colleges: `[{"id": 1, "name": "X", "location": "", "image": "", "acceptance": "4%", "enrollment": "", "tuition": "", "programs": [], "isFavorite": false, "category": "reach", "mascot": "tree"}]`, wantSchema: true},
		{name: "blank name", colleges: `[{"id": 1, "name": "  ", "location": "", "image": "", "acceptance": "4%", "enrollment": "", "tuition": "", "programs": [], "isFavorite": false, "category": "reach"}]`, wantErr: "validating colleges.json[0]"},
		{name: "duplicate id", colleges: "[" + validCollege + "," + validCollege + "]", wantErr: "colleges.json[1]: duplicate id 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := LoadFS(seedFS(t, map[string]string{collegesFile: tt.colleges}), newValidate())
			switch {
			case tt.wantSchema:
				require.Error(t, err)
				var serr SchemaError
				assert.True(t, errors.As(err, &serr), err.Error())
				assert.Equal(t, collegesFile, serr.File)
			case tt.wantErr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Len(t, ds.Colleges, 1)
			}
		})
	}
}

func TestLoadFS_secondaryFiles(t *testing.T) {
	_, err := LoadFS(seedFS(t, map[string]string{tasksFile: `[{"id": 1, "title": "Essay", "dueDate": "Oct 15", "type": "essay", "status": "pending"}]`}), newValidate())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding tasks.json")

	_, err = LoadFS(seedFS(t, map[string]string{eventsFile: `[{"id": 1, "title": "Tour", "date": "2024-10-18", "type": "party"}]`}), newValidate())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating events.json[0]")

	mfs := seedFS(t, nil)
	delete(mfs, profileFile)
	_, err = LoadFS(mfs, newValidate())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading profile.json")
}
