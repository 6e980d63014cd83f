package profile

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type (
	Repository interface {
		GetStudent() (Student, error)
		// UpdateStudent atomically swaps in update's result as the new profile snapshot.
		UpdateStudent(update func(Student) Student) (Student, error)
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}

	// View is the profile as the page shows it.
	View struct {
		Student
		Initials string `json:"initials"`
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) Get() (View, error) {
	s, err := svc.repo.GetStudent()
	if err != nil {
		return View{}, err
	}
	return View{Student: s, Initials: s.Initials()}, nil
}

// Update validates then applies the partial update to a copy of the current profile.
func (svc *Service) Update(upd UpdateStudent) (View, error) {
	if err := svc.validate.Struct(upd); err != nil {
		return View{}, err
	}
	next, err := svc.repo.UpdateStudent(upd.Apply)
	if err != nil {
		return View{}, errors.Wrap(err, "updating student")
	}
	return View{Student: next, Initials: next.Initials()}, nil
}
