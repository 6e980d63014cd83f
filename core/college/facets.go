package college

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Option is a selectable value of a filter control.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Facets struct {
	Programs   []string `json:"programs"`
	Rankings   []Option `json:"rankings"`
	Acceptance []Option `json:"acceptance"`
	Locations  []Option `json:"locations"`
	SATRanges  []Option `json:"satRanges"`
	Tuition    []Option `json:"tuition"`
}

var (
	RankingOptions = []Option{
		{Label: "Top 10 Schools", Value: RankingTop10},
		{Label: "Top 25 Schools", Value: RankingTop25},
		{Label: "Top 50 Schools", Value: RankingTop50},
	}
	AcceptanceOptions = []Option{
		{Label: "Very Selective (<10%)", Value: AcceptanceVerySelective},
		{Label: "Selective (10-25%)", Value: AcceptanceSelective},
		{Label: "Moderate (25-50%)", Value: AcceptanceModerate},
	}
	LocationOptions = locationOptions("Northeast", "Midwest", "South", "West", "International")
	SATRangeOptions = []Option{
		{Label: "1500-1600", Value: "1500-1600"},
		{Label: "1400-1500", Value: "1400-1500"},
		{Label: "1300-1400", Value: "1300-1400"},
		{Label: "1200-1300", Value: "1200-1300"},
	}
	TuitionOptions = []Option{
		{Label: "Under $30,000", Value: "under-30k"},
		{Label: "$30,000 - $45,000", Value: "30k-45k"},
		{Label: "$45,000 - $60,000", Value: "45k-60k"},
		{Label: "Over $60,000", Value: "over-60k"},
	}
)

func locationOptions(regions ...string) []Option {
	opts := make([]Option, 0, len(regions))
	for _, r := range regions {
		opts = append(opts, Option{Label: r, Value: strings.ToLower(r)})
	}
	return opts
}

// Programs returns every distinct program of the candidates, sorted.
func Programs(candidates []College) []string {
	seen := make(map[string]struct{})
	programs := make([]string, 0)
	for _, c := range candidates {
		for _, p := range c.Programs {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			programs = append(programs, p)
		}
	}
	sort.Strings(programs)
	return programs
}

// minSuggestionRatio is the lowest similarity a program needs to be suggested.
const minSuggestionRatio = 0.5

// Suggest returns up to n programs of facet most similar to program, best first.
// It returns nothing when program is itself in facet.
func Suggest(program string, facet []string, n int) []string {
	if program == "" || n <= 0 {
		return nil
	}
	type scored struct {
		program string
		ratio   float64
	}
	target := strings.Split(strings.ToLower(program), "")
	var candidates []scored
	for _, p := range facet {
		if p == program {
			return nil
		}
		ratio := difflib.NewMatcher(target, strings.Split(strings.ToLower(p), "")).Ratio()
		if ratio >= minSuggestionRatio {
			candidates = append(candidates, scored{p, ratio})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].ratio > candidates[j].ratio })

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	suggestions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, c.program)
	}
	return suggestions
}
