package college

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrograms(t *testing.T) {
	assert.Equal(t,
		[]string{"Business", "Computer Science", "Engineering", "Liberal Arts"},
		Programs(catalog),
	)

	// duplicated input does not duplicate the facet
	assert.Equal(t, Programs(catalog), Programs(append(catalog, catalog...)))
	assert.Equal(t, []string{}, Programs(nil))
}

func TestSuggest(t *testing.T) {
	facet := Programs(catalog)

	tests := []struct {
		name    string
		program string
		want    []string
	}{
		{name: "case mistake", program: "business", want: []string{"Business"}},
		{name: "prefix", program: "Computer", want: []string{"Computer Science"}},
		{name: "typo", program: "Enginering", want: []string{"Engineering"}},
		{name: "known program", program: "Business", want: nil},
		{name: "nothing close", program: "Zz", want: []string{}},
		{name: "empty", program: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.program, facet, 3))
		})
	}
}

func TestSuggest_limit(t *testing.T) {
	facet := []string{"Art", "Arts", "Art History", "Fine Arts"}
	got := Suggest("art", facet, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, "Art", got[0])
}
