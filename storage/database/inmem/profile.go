package inmemdb

import "github.com/trezcool/collegecompass/core/profile"

type studentRepository struct {
	db *studentTable
}

func NewStudentRepository(db *DB) profile.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) GetStudent() (profile.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.row, nil
}

func (repo *studentRepository) UpdateStudent(update func(profile.Student) profile.Student) (profile.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	repo.db.row = update(repo.db.row)
	return repo.db.row, nil
}
