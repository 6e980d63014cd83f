// Package profile holds the student's personal and academic record.
package profile

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/trezcool/collegecompass/core/badge"
)

type ActivityCategory string

const (
	ActivityLeadership ActivityCategory = "leadership"
	ActivityCommunity  ActivityCategory = "community"
	ActivityAcademic   ActivityCategory = "academic"
	ActivityWork       ActivityCategory = "work"
	ActivityArts       ActivityCategory = "arts"
	ActivitySports     ActivityCategory = "sports"
)

type Activity struct {
	Name        string           `json:"name" validate:"notblank"`
	Role        string           `json:"role"`
	Years       string           `json:"years"`
	Description string           `json:"description"`
	Category    ActivityCategory `json:"category" validate:"oneof=leadership community academic work arts sports"`
}

func (a Activity) Badge() badge.Badge {
	return badge.For(badge.KindActivity, string(a.Category))
}

// Student scores are display strings, eg. GPA "4.2".
type Student struct {
	Name       string     `json:"name" validate:"notblank"`
	Email      string     `json:"email" validate:"omitempty,email"`
	Phone      string     `json:"phone"`
	Location   string     `json:"location"`
	Graduation string     `json:"graduation"`
	School     string     `json:"school"`
	GPA        string     `json:"gpa"`
	SAT        string     `json:"sat"`
	ACT        string     `json:"act"`
	AP         []string   `json:"ap"`
	Honors     []string   `json:"honors"`
	Activities []Activity `json:"activities" validate:"dive"`
	Counselor  string     `json:"counselor"`
}

// Initials are the first letters of each word of the name, eg. "Emma Watson" -> "EW".
func (s Student) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(s.Name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// UpdateStudent is a partial update: nil fields are left as is.
type UpdateStudent struct {
	Name       *string  `json:"name" validate:"omitempty,notblank"`
	Email      *string  `json:"email" validate:"omitempty,email"`
	Phone      *string  `json:"phone"`
	Location   *string  `json:"location"`
	Graduation *int     `json:"graduation" validate:"omitempty,min=1900,max=2100"`
	School     *string  `json:"school"`
	GPA        *float64 `json:"gpa" validate:"omitempty,gte=0,lte=5"`
	SAT        *int     `json:"sat" validate:"omitempty,min=400,max=1600"`
	ACT        *int     `json:"act" validate:"omitempty,min=1,max=36"`
	AP         []string `json:"ap" validate:"omitempty,dive,notblank"`
	Honors     []string `json:"honors" validate:"omitempty,dive,notblank"`
	Counselor  *string  `json:"counselor"`
}

// Apply returns a copy of s with the set fields of upd; s is left untouched.
func (upd UpdateStudent) Apply(s Student) Student {
	if upd.Name != nil {
		s.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Email != nil {
		s.Email = strings.TrimSpace(*upd.Email)
	}
	if upd.Phone != nil {
		s.Phone = *upd.Phone
	}
	if upd.Location != nil {
		s.Location = *upd.Location
	}
	if upd.Graduation != nil {
		s.Graduation = strconv.Itoa(*upd.Graduation)
	}
	if upd.School != nil {
		s.School = *upd.School
	}
	if upd.GPA != nil {
		s.GPA = strconv.FormatFloat(*upd.GPA, 'f', -1, 64)
	}
	if upd.SAT != nil {
		s.SAT = strconv.Itoa(*upd.SAT)
	}
	if upd.ACT != nil {
		s.ACT = strconv.Itoa(*upd.ACT)
	}
	if upd.AP != nil {
		s.AP = append([]string(nil), upd.AP...)
	}
	if upd.Honors != nil {
		s.Honors = append([]string(nil), upd.Honors...)
	}
	if upd.Counselor != nil {
		s.Counselor = *upd.Counselor
	}
	return s
}
