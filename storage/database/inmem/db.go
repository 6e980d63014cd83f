package inmemdb

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/collegecompass/core/application"
	"github.com/trezcool/collegecompass/core/calendar"
	"github.com/trezcool/collegecompass/core/college"
	"github.com/trezcool/collegecompass/core/course"
	"github.com/trezcool/collegecompass/core/document"
	"github.com/trezcool/collegecompass/core/profile"
	"github.com/trezcool/collegecompass/core/resource"
	"github.com/trezcool/collegecompass/storage/seed"
)

// Tables hold read-only-shared snapshots: rows are never modified in place,
// writers build a new slice and swap it under the write lock.
type (
	DB struct {
		college     *collegeTable
		resource    *resourceTable
		student     *studentTable
		application *applicationTable
		event       *eventTable
		document    *documentTable
		course      *courseTable
	}

	collegeTable struct {
		rows  []college.College
		index map[int]int // id -> position in rows
		mutex sync.RWMutex
	}

	resourceTable struct {
		rows  []resource.Resource
		index map[int]int
		mutex sync.RWMutex
	}

	studentTable struct {
		row   profile.Student
		mutex sync.RWMutex
	}

	// read-only tables, never written after Open

	applicationTable struct {
		apps  []application.Application
		tasks []application.Task
	}

	eventTable struct {
		rows []calendar.Event
	}

	documentTable struct {
		rows []document.Document
	}

	courseTable struct {
		courses []course.Course
		goals   []course.Goal
	}
)

// Open builds the DB from a loaded seed. ds is not retained.
func Open(ds *seed.Dataset) (*DB, error) {
	if ds == nil {
		return nil, errors.New("opening in-memory DB: no dataset")
	}
	db := &DB{
		college:     &collegeTable{rows: copyColleges(ds.Colleges), index: make(map[int]int, len(ds.Colleges))},
		resource:    &resourceTable{rows: copyResources(ds.Resources), index: make(map[int]int, len(ds.Resources))},
		student:     &studentTable{row: ds.Student},
		application: &applicationTable{apps: ds.Applications, tasks: ds.Tasks},
		event:       &eventTable{rows: ds.Events},
		document:    &documentTable{rows: ds.Documents},
		course:      &courseTable{courses: ds.Courses, goals: ds.Goals},
	}
	for i, c := range db.college.rows {
		if _, dup := db.college.index[c.ID]; dup {
			return nil, errors.Errorf("opening in-memory DB: duplicate college id %d", c.ID)
		}
		db.college.index[c.ID] = i
	}
	for i, r := range db.resource.rows {
		if _, dup := db.resource.index[r.ID]; dup {
			return nil, errors.Errorf("opening in-memory DB: duplicate resource id %d", r.ID)
		}
		db.resource.index[r.ID] = i
	}
	return db, nil
}

func copyColleges(src []college.College) []college.College {
	return append(make([]college.College, 0, len(src)), src...)
}

func copyResources(src []resource.Resource) []resource.Resource {
	return append(make([]resource.Resource, 0, len(src)), src...)
}
