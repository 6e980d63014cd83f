package inmemdb

import "github.com/trezcool/collegecompass/core/resource"

type resourceRepository struct {
	db *resourceTable
}

func NewResourceRepository(db *DB) resource.Repository {
	return &resourceRepository{db: db.resource}
}

func (repo *resourceRepository) QueryAllResources() ([]resource.Resource, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.rows, nil
}

func (repo *resourceRepository) GetResourceByID(id int) (resource.Resource, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if i, ok := repo.db.index[id]; ok {
		return repo.db.rows[i], nil
	}
	return resource.Resource{}, resource.ErrNotFound
}

func (repo *resourceRepository) UpdateResource(id int, update func(resource.Resource) resource.Resource) (resource.Resource, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i, ok := repo.db.index[id]
	if !ok {
		return resource.Resource{}, resource.ErrNotFound
	}
	rows := copyResources(repo.db.rows)
	rows[i] = update(rows[i])
	rows[i].ID = id
	repo.db.rows = rows
	return rows[i], nil
}
