package college

import (
	"errors"

	"github.com/trezcool/collegecompass/core"
)

var (
	// errors
	ErrNotFound          = errors.New("college not found")
	errUnsupportedFilter = errors.New("unsupported filter")
)

const (
	maxSuggestions       = 3
	unsupportedFilterMsg = "this filter is not yet supported"
)

type (
	// Repository holds the catalog as a read-only-shared snapshot.
	Repository interface {
		// QueryAllColleges returns the current snapshot; callers must not modify it.
		QueryAllColleges() ([]College, error)
		GetCollegeByID(id int) (College, error)
		// UpdateCollege atomically swaps in a new snapshot where only the college with the id
		// is replaced by update's result. Previously returned snapshots are left untouched.
		UpdateCollege(id int, update func(College) College) (College, error)
	}

	Service struct {
		repo          Repository
		strictFilters bool
		programs      []string // facet computed once per data-source load
	}

	SearchResult struct {
		Colleges    []College `json:"colleges"`
		Total       int       `json:"total"`
		Unsupported []string  `json:"unsupportedFilters,omitempty"`
		Suggestions []string  `json:"suggestions,omitempty"`
	}
)

func NewService(repo Repository, conf *core.Config) (*Service, error) {
	colleges, err := repo.QueryAllColleges()
	if err != nil {
		return nil, err
	}
	svc := &Service{
		repo:     repo,
		programs: Programs(colleges),
	}
	if conf != nil {
		svc.strictFilters = conf.Catalog.StrictFilters
	}
	return svc, nil
}

// Search runs the filter engine over the catalog.
func (svc *Service) Search(f Filters) (SearchResult, error) {
	unsupported := f.Unsupported()
	if svc.strictFilters && len(unsupported) > 0 {
		flds := make([]core.FieldError, 0, len(unsupported))
		for _, dim := range unsupported {
			flds = append(flds, core.FieldError{Field: dim, Error: unsupportedFilterMsg})
		}
		return SearchResult{}, core.NewValidationError(errUnsupportedFilter, flds...)
	}

	colleges, err := svc.repo.QueryAllColleges()
	if err != nil {
		return SearchResult{}, err
	}
	res := SearchResult{
		Colleges:    Apply(colleges, f),
		Unsupported: unsupported,
	}
	res.Total = len(res.Colleges)
	if res.Total == 0 && f.Program != "" {
		res.Suggestions = Suggest(f.Program, svc.programs, maxSuggestions)
	}
	return res, nil
}

// Facets hands out a copy of the program facet; the cached one is computed once per load.
func (svc *Service) Facets() Facets {
	return Facets{
		Programs:   append([]string(nil), svc.programs...),
		Rankings:   RankingOptions,
		Acceptance: AcceptanceOptions,
		Locations:  LocationOptions,
		SATRanges:  SATRangeOptions,
		Tuition:    TuitionOptions,
	}
}

func (svc *Service) GetByID(id int) (College, error) {
	return svc.repo.GetCollegeByID(id)
}

func (svc *Service) Favorites() ([]College, error) {
	colleges, err := svc.repo.QueryAllColleges()
	if err != nil {
		return nil, err
	}
	favs := make([]College, 0)
	for _, c := range colleges {
		if c.IsFavorite {
			favs = append(favs, c)
		}
	}
	return favs, nil
}

// ToggleFavorite flips IsFavorite on a copy of the college and publishes a new catalog snapshot.
func (svc *Service) ToggleFavorite(id int) (College, error) {
	return svc.repo.UpdateCollege(id, func(c College) College {
		return c.withFavorite(!c.IsFavorite)
	})
}
