package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	assert.Equal(t, Badge{Label: "Reach", Background: "bg-red-100", Text: "text-red-800"}, For(KindCategory, "reach"))
	assert.Equal(t, "In Progress", For(KindStatus, "in_progress").Label)
	assert.Equal(t, "border-green-200", For(KindEventType, "test").Border)

	unknown := For(KindStatus, "on_hold")
	assert.Equal(t, Badge{Label: "On Hold", Background: "bg-gray-100", Text: "text-gray-800"}, unknown)
	assert.False(t, Known(KindStatus, "on_hold"))
	assert.True(t, Known(KindResourceType, "webinar"))
	assert.Equal(t, "", For(KindCategory, "").Label)
}

func TestScale_Color(t *testing.T) {
	tests := []struct {
		percent     float64
		application string
		tracker     string
		goal        string
	}{
		{100, "bg-green-500", "bg-green-500", "bg-green-500"},
		{80, "bg-green-500", "bg-green-500", "bg-green-500"},
		{75, "bg-blue-500", "bg-blue-500", "bg-green-500"},
		{50, "bg-blue-500", "bg-blue-500", "bg-blue-500"},
		{25, "bg-yellow-500", "bg-yellow-500", "bg-yellow-500"},
		{24.9, "bg-gray-300", "bg-red-500", "bg-red-500"},
		{0, "bg-gray-300", "bg-red-500", "bg-red-500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.application, ApplicationScale.Color(tt.percent), tt.percent)
		assert.Equal(t, tt.tracker, TrackerScale.Color(tt.percent), tt.percent)
		assert.Equal(t, tt.goal, GoalScale.Color(tt.percent), tt.percent)
	}
}
