package inmemdb

import (
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/collegecompass/core"
	"github.com/trezcool/collegecompass/core/college"
	"github.com/trezcool/collegecompass/core/profile"
	"github.com/trezcool/collegecompass/core/resource"
	"github.com/trezcool/collegecompass/storage/seed"
)

func testDataset() *seed.Dataset {
	return &seed.Dataset{
		Colleges: []college.College{
			{ID: 1, Name: "Stanford University", Category: college.CategoryReach},
			{ID: 2, Name: "State U", Category: college.CategorySafety},
		},
		Resources: []resource.Resource{
			{ID: 1, Title: "Essay Guide", Category: resource.CategoryEssay},
		},
		Student: profile.Student{Name: "Emma Watson"},
	}
}

func TestOpen(t *testing.T) {
	_, err := Open(nil)
	assert.Error(t, err)

	ds := testDataset()
	ds.Colleges = append(ds.Colleges, college.College{ID: 1, Name: "Again"})
	_, err = Open(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate college id 1")
}

func TestCollegeRepository_UpdateCollege(t *testing.T) {
	ds := testDataset()
	db, err := Open(ds)
	require.NoError(t, err)
	repo := NewCollegeRepository(db)

	before, err := repo.QueryAllColleges()
	require.NoError(t, err)

	_, err = repo.UpdateCollege(2, func(c college.College) college.College {
		c.IsFavorite = true
		return c
	})
	require.NoError(t, err)

	after, err := repo.QueryAllColleges()
	require.NoError(t, err)
	assert.True(t, after[1].IsFavorite)
	assert.False(t, before[1].IsFavorite, "previous snapshot changed")
	assert.False(t, ds.Colleges[1].IsFavorite, "seed changed")

	got, err := repo.GetCollegeByID(2)
	require.NoError(t, err)
	assert.True(t, got.IsFavorite)

	_, err = repo.GetCollegeByID(3)
	assert.Equal(t, college.ErrNotFound, err)
	_, err = repo.UpdateCollege(3, func(c college.College) college.College { return c })
	assert.Equal(t, college.ErrNotFound, err)
}

func TestCollegeRepository_concurrentToggles(t *testing.T) {
	db, err := Open(testDataset())
	require.NoError(t, err)
	svc, err := college.NewService(NewCollegeRepository(db), nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = svc.Search(college.Filters{Query: "u"})
		}()
		go func() {
			defer wg.Done()
			_, _ = svc.ToggleFavorite(1)
		}()
	}
	wg.Wait()

	// an even number of toggles leaves the college as it started
	c, err := svc.GetByID(1)
	require.NoError(t, err)
	assert.False(t, c.IsFavorite)
}

func TestResourceRepository_UpdateResource(t *testing.T) {
	db, err := Open(testDataset())
	require.NoError(t, err)
	svc := resource.NewService(NewResourceRepository(db))

	before, err := svc.List(resource.QueryFilter{})
	require.NoError(t, err)

	r, err := svc.ToggleSaved(1)
	require.NoError(t, err)
	assert.True(t, r.Saved)
	assert.False(t, before[0].Saved)

	_, err = svc.ToggleSaved(42)
	assert.Equal(t, resource.ErrNotFound, err)
}

func TestStudentRepository(t *testing.T) {
	db, err := Open(testDataset())
	require.NoError(t, err)
	repo := NewStudentRepository(db)

	before, err := repo.GetStudent()
	require.NoError(t, err)
	s, err := repo.UpdateStudent(func(s profile.Student) profile.Student {
		s.Name = "Emma W."
		return s
	})
	require.NoError(t, err)
	assert.Equal(t, "Emma W.", s.Name)
	assert.Equal(t, "Emma Watson", before.Name)

	got, err := repo.GetStudent()
	require.NoError(t, err)
	assert.Equal(t, "Emma W.", got.Name)
}

func TestStudentRepository_concurrentUpdates(t *testing.T) {
	db, err := Open(testDataset())
	require.NoError(t, err)
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	profile.RegisterValidators(validate, translator)
	svc := profile.NewService(NewStudentRepository(db), validate)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			phone := "555-0100"
			_, _ = svc.Update(profile.UpdateStudent{Phone: &phone})
		}()
		go func() {
			defer wg.Done()
			school := "Lincoln High"
			_, _ = svc.Update(profile.UpdateStudent{School: &school})
		}()
	}
	wg.Wait()

	view, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "555-0100", view.Phone)
	assert.Equal(t, "Lincoln High", view.School)
	assert.Equal(t, "Emma Watson", view.Name)
}
