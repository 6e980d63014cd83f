package college

import "github.com/trezcool/collegecompass/core/badge"

// Category classifies a college's admission difficulty relative to the student.
// It is assigned when the catalog is authored, not computed.
type Category string

const (
	CategoryReach  Category = "reach"
	CategoryTarget Category = "target"
	CategorySafety Category = "safety"
)

var Categories = []Category{CategoryReach, CategoryTarget, CategorySafety}

func (c Category) IsValid() bool {
	switch c {
	case CategoryReach, CategoryTarget, CategorySafety:
		return true
	}
	return false
}

func (c Category) Badge() badge.Badge {
	return badge.For(badge.KindCategory, string(c))
}

type Ranking struct {
	National    *int `json:"national,omitempty" validate:"omitempty,gt=0"`
	LiberalArts *int `json:"liberal_arts,omitempty" validate:"omitempty,gt=0"`
	Public      *int `json:"public,omitempty" validate:"omitempty,gt=0"`
	Engineering *int `json:"engineering,omitempty" validate:"omitempty,gt=0"`
	Business    *int `json:"business,omitempty" validate:"omitempty,gt=0"`
}

type Details struct {
	SATRange            string   `json:"satRange,omitempty"`
	ACTRange            string   `json:"actRange,omitempty"`
	GraduationRate      string   `json:"graduationRate,omitempty"`
	RetentionRate       string   `json:"retentionRate,omitempty"`
	StudentFacultyRatio string   `json:"studentFacultyRatio,omitempty"`
	Ranking             *Ranking `json:"ranking,omitempty"`
}

type College struct {
	ID         int      `json:"id" validate:"gt=0"`
	Name       string   `json:"name" validate:"notblank"`
	Location   string   `json:"location"`
	Image      string   `json:"image" validate:"omitempty,uri"`
	Rank       *int     `json:"rank,omitempty" validate:"omitempty,gt=0"`
	Acceptance string   `json:"acceptance" validate:"required"`
	Enrollment string   `json:"enrollment"`
	Tuition    string   `json:"tuition"`
	Programs   []string `json:"programs" validate:"dive,notblank"`
	IsFavorite bool     `json:"isFavorite"`
	Category   Category `json:"category" validate:"oneof=reach target safety"`
	Details    *Details `json:"details,omitempty"`
}

// NationalRank returns details.ranking.national when it is set.
func (c College) NationalRank() (int, bool) {
	if c.Details == nil || c.Details.Ranking == nil || c.Details.Ranking.National == nil {
		return 0, false
	}
	return *c.Details.Ranking.National, true
}

// withFavorite returns a copy of c with IsFavorite set; c is left untouched.
// Programs and Details are shared since catalog entities are never mutated in place.
func (c College) withFavorite(fav bool) College {
	c.IsFavorite = fav
	return c
}
