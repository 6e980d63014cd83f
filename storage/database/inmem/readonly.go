package inmemdb

import (
	"github.com/trezcool/collegecompass/core/application"
	"github.com/trezcool/collegecompass/core/calendar"
	"github.com/trezcool/collegecompass/core/course"
	"github.com/trezcool/collegecompass/core/document"
)

type applicationRepository struct {
	db *applicationTable
}

func NewApplicationRepository(db *DB) application.Repository {
	return &applicationRepository{db: db.application}
}

func (repo *applicationRepository) QueryAllApplications() ([]application.Application, error) {
	return repo.db.apps, nil
}

func (repo *applicationRepository) QueryAllTasks() ([]application.Task, error) {
	return repo.db.tasks, nil
}

type eventRepository struct {
	db *eventTable
}

func NewEventRepository(db *DB) calendar.Repository {
	return &eventRepository{db: db.event}
}

func (repo *eventRepository) QueryAllEvents() ([]calendar.Event, error) {
	return repo.db.rows, nil
}

type documentRepository struct {
	db *documentTable
}

func NewDocumentRepository(db *DB) document.Repository {
	return &documentRepository{db: db.document}
}

func (repo *documentRepository) QueryAllDocuments() ([]document.Document, error) {
	return repo.db.rows, nil
}

type courseRepository struct {
	db *courseTable
}

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.course}
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	return repo.db.courses, nil
}

func (repo *courseRepository) QueryAllGoals() ([]course.Goal, error) {
	return repo.db.goals, nil
}
