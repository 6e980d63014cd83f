package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Due Date `json:"due"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-11-01"}`), &payload))
	assert.Equal(t, NewDate(2024, time.November, 1), payload.Due)
	assert.Equal(t, "Nov 1, 2024", payload.Due.Display())

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Equal(t, `{"due":"2024-11-01"}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"due":"11/01/2024"}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"due":20241101}`), &payload))
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("PDT", -7*3600)
	d := DateOf(time.Date(2024, time.October, 31, 23, 30, 0, 0, loc))
	assert.Equal(t, "2024-10-31", d.String())
	assert.Equal(t, "2024-11-30", d.AddDays(30).String())
}

func TestParseOrdering(t *testing.T) {
	tests := []struct {
		in   string
		want []Ordering
	}{
		{"", nil},
		{"name", []Ordering{{Field: "name", Ascending: true}}},
		{"-date_added, name", []Ordering{{Field: "date_added"}, {Field: "name", Ascending: true}}},
		{",-,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOrdering(tt.in))
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(nil, FieldError{Field: "sat", Error: "too low"})
	assert.Equal(t, "sat: too low", err.Error())
	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(NewShutdownError("bye")))
	assert.True(t, IsShutdown(NewShutdownError("bye")))
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Top", CleanString("  Top \n"))
	assert.Equal(t, "top", CleanString("  Top ", true))
	assert.True(t, ContainsFold("Common App Essay", "app"))
}
