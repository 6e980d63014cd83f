// Package seed decodes and validates the sample data embedded in the binary.
package seed

import (
	"bytes"
	"embed"
	"encoding/json"
	"io/fs"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"

	"github.com/trezcool/collegecompass/core/application"
	"github.com/trezcool/collegecompass/core/calendar"
	"github.com/trezcool/collegecompass/core/college"
	"github.com/trezcool/collegecompass/core/course"
	"github.com/trezcool/collegecompass/core/document"
	"github.com/trezcool/collegecompass/core/profile"
	"github.com/trezcool/collegecompass/core/resource"
)

//go:embed data/*.json
var embedded embed.FS

const (
	collegesFile     = "colleges.json"
	collegeSchema    = "college.schema.json"
	applicationsFile = "applications.json"
	tasksFile        = "tasks.json"
	eventsFile       = "events.json"
	documentsFile    = "documents.json"
	coursesFile      = "courses.json"
	profileFile      = "profile.json"
	resourcesFile    = "resources.json"
)

// Dataset is every collection the process starts from.
type Dataset struct {
	Colleges     []college.College
	Applications []application.Application
	Tasks        []application.Task
	Events       []calendar.Event
	Documents    []document.Document
	Courses      []course.Course
	Goals        []course.Goal
	Student      profile.Student
	Resources    []resource.Resource
}

// SchemaError lists the JSON Schema violations of a seed file.
type SchemaError struct {
	File   string
	Errors []string
}

func (err SchemaError) Error() string {
	return err.File + ": does not match its schema: " + strings.Join(err.Errors, "; ")
}

// Load reads the embedded seed.
func Load(validate *validator.Validate) (*Dataset, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, errors.Wrap(err, "opening embedded seed")
	}
	return LoadFS(sub, validate)
}

// LoadFS reads a seed laid out like the embedded one from fsys.
// It fails on the first file that does not decode, match its schema, pass struct validation or has duplicate ids.
func LoadFS(fsys fs.FS, validate *validator.Validate) (*Dataset, error) {
	ds := new(Dataset)

	raw, err := fs.ReadFile(fsys, collegesFile)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", collegesFile)
	}
	schema, err := fs.ReadFile(fsys, collegeSchema)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", collegeSchema)
	}
	if err := validateSchema(collegesFile, schema, raw); err != nil {
		return nil, err
	}
	if err := decode(collegesFile, raw, &ds.Colleges); err != nil {
		return nil, err
	}

	var courses struct {
		Goals   []course.Goal   `json:"goals"`
		Courses []course.Course `json:"courses"`
	}
	files := []struct {
		name string
		dst  interface{}
	}{
		{applicationsFile, &ds.Applications},
		{tasksFile, &ds.Tasks},
		{eventsFile, &ds.Events},
		{documentsFile, &ds.Documents},
		{coursesFile, &courses},
		{profileFile, &ds.Student},
		{resourcesFile, &ds.Resources},
	}
	for _, f := range files {
		raw, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", f.name)
		}
		if err := decode(f.name, raw, f.dst); err != nil {
			return nil, err
		}
	}
	ds.Goals, ds.Courses = courses.Goals, courses.Courses

	if err := ds.validate(validate); err != nil {
		return nil, err
	}
	return ds, nil
}

func validateSchema(file string, schema, doc []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return errors.Wrapf(err, "validating %s", file)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return SchemaError{File: file, Errors: errs}
	}
	return nil
}

func decode(file string, raw []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Wrapf(err, "decoding %s", file)
	}
	return nil
}

func (ds *Dataset) validate(validate *validator.Validate) error {
	collections := []struct {
		file  string
		items interface{}
	}{
		{collegesFile, ds.Colleges},
		{applicationsFile, ds.Applications},
		{tasksFile, ds.Tasks},
		{eventsFile, ds.Events},
		{documentsFile, ds.Documents},
		{coursesFile, ds.Courses},
		{coursesFile, ds.Goals},
		{resourcesFile, ds.Resources},
	}
	for _, coll := range collections {
		if err := validateItems(validate, coll.file, coll.items); err != nil {
			return err
		}
	}
	if err := validate.Struct(ds.Student); err != nil {
		return errors.Wrapf(err, "validating %s", profileFile)
	}
	return nil
}

// validateItems runs struct validation on each element of the items slice, then checks ID uniqueness.
func validateItems(validate *validator.Validate, file string, items interface{}) error {
	v := reflect.ValueOf(items)
	seen := make(map[interface{}]struct{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		item := v.Index(i)
		if err := validate.Struct(item.Interface()); err != nil {
			return errors.Wrapf(err, "validating %s[%d]", file, i)
		}
		id := item.FieldByName("ID")
		if !id.IsValid() {
			continue
		}
		if _, dup := seen[id.Interface()]; dup {
			return errors.Errorf("%s[%d]: duplicate id %v", file, i, id.Interface())
		}
		seen[id.Interface()] = struct{}{}
	}
	return nil
}
