// Package resource is the library of guides, articles and videos.
package resource

import (
	"errors"

	"github.com/trezcool/collegecompass/core"
	"github.com/trezcool/collegecompass/core/badge"
)

var ErrNotFound = errors.New("resource not found")

type (
	Type     string
	Category string
)

const (
	TypeArticle   Type = "article"
	TypeGuide     Type = "guide"
	TypeVideo     Type = "video"
	TypeWebinar   Type = "webinar"
	TypeChecklist Type = "checklist"

	// CategoryAll matches every category.
	CategoryAll         Category = "all"
	CategoryEssay       Category = "essay"
	CategoryFinancial   Category = "financial"
	CategoryCollegeLife Category = "college-life"
	CategoryApplication Category = "application"
	CategoryInterviews  Category = "interviews"
	CategoryTesting     Category = "testing"
)

type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
}

// Categories in display order, starting with CategoryAll.
var Categories = []CategoryInfo{
	{ID: CategoryAll, Name: "All Resources"},
	{ID: CategoryEssay, Name: "Essay Writing"},
	{ID: CategoryFinancial, Name: "Financial Aid"},
	{ID: CategoryCollegeLife, Name: "College Life"},
	{ID: CategoryApplication, Name: "Applications"},
	{ID: CategoryInterviews, Name: "Interviews"},
	{ID: CategoryTesting, Name: "Testing"},
}

type Resource struct {
	ID          int       `json:"id" validate:"gt=0"`
	Title       string    `json:"title" validate:"notblank"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty" validate:"omitempty,uri"`
	Type        Type      `json:"type" validate:"oneof=article guide video webinar checklist"`
	Category    Category  `json:"category" validate:"oneof=essay financial college-life application interviews testing"`
	ReadTime    string    `json:"readTime"`
	Date        core.Date `json:"date"`
	Saved       bool      `json:"saved"`
	Featured    bool      `json:"featured,omitempty"`
}

func (r Resource) Badge() badge.Badge {
	return badge.For(badge.KindResourceType, string(r.Type))
}

// QueryFilter matches resources of Category (all when empty) whose title or description contains Search.
type QueryFilter struct {
	Category Category `query:"category" validate:"omitempty,oneof=all essay financial college-life application interviews testing"`
	Search   string   `query:"search"`
}

func (f QueryFilter) matches(r Resource) bool {
	if f.Category != "" && f.Category != CategoryAll && r.Category != f.Category {
		return false
	}
	if f.Search == "" {
		return true
	}
	return core.ContainsFold(r.Title, f.Search) || core.ContainsFold(r.Description, f.Search)
}

func Filter(resources []Resource, f QueryFilter) []Resource {
	f.Search = core.CleanString(f.Search)
	result := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if f.matches(r) {
			result = append(result, r)
		}
	}
	return result
}

type (
	Repository interface {
		QueryAllResources() ([]Resource, error)
		GetResourceByID(id int) (Resource, error)
		// UpdateResource atomically swaps in a new snapshot where only the resource with the id
		// is replaced by update's result.
		UpdateResource(id int, update func(Resource) Resource) (Resource, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Categories() []CategoryInfo {
	return Categories
}

func (svc *Service) List(f QueryFilter) ([]Resource, error) {
	resources, err := svc.repo.QueryAllResources()
	if err != nil {
		return nil, err
	}
	return Filter(resources, f), nil
}

// Featured returns the first featured resource, if any.
func (svc *Service) Featured() (*Resource, error) {
	resources, err := svc.repo.QueryAllResources()
	if err != nil {
		return nil, err
	}
	for _, r := range resources {
		if r.Featured {
			return &r, nil
		}
	}
	return nil, nil
}

func (svc *Service) ToggleSaved(id int) (Resource, error) {
	return svc.repo.UpdateResource(id, func(r Resource) Resource {
		r.Saved = !r.Saved
		return r
	})
}
