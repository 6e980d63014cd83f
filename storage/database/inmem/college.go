package inmemdb

import "github.com/trezcool/collegecompass/core/college"

type collegeRepository struct {
	db *collegeTable
}

func NewCollegeRepository(db *DB) college.Repository {
	return &collegeRepository{db: db.college}
}

func (repo *collegeRepository) QueryAllColleges() ([]college.College, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.rows, nil
}

func (repo *collegeRepository) GetCollegeByID(id int) (college.College, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if i, ok := repo.db.index[id]; ok {
		return repo.db.rows[i], nil
	}
	return college.College{}, college.ErrNotFound
}

func (repo *collegeRepository) UpdateCollege(id int, update func(college.College) college.College) (college.College, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i, ok := repo.db.index[id]
	if !ok {
		return college.College{}, college.ErrNotFound
	}
	rows := copyColleges(repo.db.rows)
	rows[i] = update(rows[i])
	rows[i].ID = id
	repo.db.rows = rows
	return rows[i], nil
}
