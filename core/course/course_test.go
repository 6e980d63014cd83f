package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	courses []Course
	goals   []Goal
}

func (repo fakeRepo) QueryAllCourses() ([]Course, error) { return repo.courses, nil }
func (repo fakeRepo) QueryAllGoals() ([]Goal, error) { return repo.goals, nil }

var testRepo = fakeRepo{
	courses: []Course{
		{ID: "ap-calc-ab", Name: "AP Calculus AB", Type: TypeAP, Grade: 11, Semester: 1, Recommended: true},
		{ID: "honors-geo", Name: "Honors Geometry", Type: TypeHonors, Grade: 9, Semester: 1},
		{ID: "honors-bio", Name: "Honors Biology", Type: TypeHonors, Grade: 9, Semester: 1},
		{ID: "us-history", Name: "US History", Type: TypeRegular, Grade: 11, Semester: 2},
	},
	goals: []Goal{
		{Type: TypeAP, Target: 8, Achieved: 3},
		{Type: TypeHonors, Target: 12, Achieved: 6},
		{Type: TypeRegular, Target: 8, Achieved: 6},
		{Type: TypeRegular, Target: 0, Achieved: 2},
	},
}

func courseIDs(courses []Course) []string {
	res := make([]string, 0, len(courses))
	for _, c := range courses {
		res = append(res, c.ID)
	}
	return res
}

func TestProgress(t *testing.T) {
	tests := []struct {
		goal        Goal
		wantPercent float64
		wantColor   string
	}{
		{Goal{TypeAP, 8, 3}, 37.5, "bg-yellow-500"},
		{Goal{TypeHonors, 12, 6}, 50, "bg-blue-500"},
		{Goal{TypeRegular, 8, 6}, 75, "bg-green-500"},
		{Goal{TypeRegular, 8, 1}, 12.5, "bg-red-500"},
		{Goal{TypeRegular, 0, 2}, 0, "bg-red-500"},
	}
	for _, tt := range tests {
		got := Progress(tt.goal)
		assert.Equal(t, tt.wantPercent, got.Percent)
		assert.Equal(t, tt.wantColor, got.Color)
	}
}

func TestService_Plan(t *testing.T) {
	svc := NewService(testRepo)

	tests := []struct {
		name            string
		filter          QueryFilter
		wantPlanned     []string
		wantRecommended []string
	}{
		{name: "all grades", filter: QueryFilter{Recommendations: true}, wantPlanned: []string{"honors-geo", "honors-bio", "us-history"}, wantRecommended: []string{"ap-calc-ab"}},
		{name: "grade 9", filter: QueryFilter{Grade: 9, Recommendations: true}, wantPlanned: []string{"honors-geo", "honors-bio"}, wantRecommended: []string{"ap-calc-ab"}},
		{name: "8th grade is empty", filter: QueryFilter{Grade: 8, Recommendations: true}, wantPlanned: []string{}, wantRecommended: []string{"ap-calc-ab"}},
		{name: "without recommendations", filter: QueryFilter{Grade: 11}, wantPlanned: []string{"us-history"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := svc.Plan(tt.filter)
			require.NoError(t, err)
			assert.Len(t, plan.Goals, len(testRepo.goals))
			assert.Equal(t, tt.wantPlanned, courseIDs(plan.Planned))
			if tt.wantRecommended == nil {
				assert.Nil(t, plan.Recommended)
			} else {
				assert.Equal(t, tt.wantRecommended, courseIDs(plan.Recommended))
			}
		})
	}
}
