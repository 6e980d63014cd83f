package college

import "github.com/trezcool/collegecompass/core"

// Filter dimensions that are accepted but not implemented yet.
const (
	FilterType     = "type"
	FilterLocation = "location"
	FilterTuition  = "tuition"
	FilterSATRange = "sat_range"
)

// Filters holds one criterion per filter dimension plus the free-text query.
// An empty value does not filter on its dimension.
type Filters struct {
	Query      string `query:"search" json:"search,omitempty"`
	Type       string `query:"type" json:"type,omitempty"`
	Location   string `query:"location" json:"location,omitempty"`
	Program    string `query:"program" json:"program,omitempty"`
	Acceptance string `query:"acceptance" json:"acceptance,omitempty" validate:"omitempty,oneof=very-selective selective moderate"`
	Ranking    string `query:"ranking" json:"ranking,omitempty" validate:"omitempty,oneof=top-10 top-25 top-50"`
	Tuition    string `query:"tuition" json:"tuition,omitempty"`
	SATRange   string `query:"sat_range" json:"sat_range,omitempty"`
}

func (f *Filters) Clean() {
	f.Query = core.CleanString(f.Query)
	f.Type = core.CleanString(f.Type)
	f.Location = core.CleanString(f.Location)
	f.Program = core.CleanString(f.Program)
	f.Acceptance = core.CleanString(f.Acceptance, true /* lower */)
	f.Ranking = core.CleanString(f.Ranking, true /* lower */)
	f.Tuition = core.CleanString(f.Tuition)
	f.SATRange = core.CleanString(f.SATRange)
}

func (f Filters) IsEmpty() bool {
	return f == Filters{}
}

// Unsupported lists the set dimensions the engine does not filter on, in a fixed order.
func (f Filters) Unsupported() []string {
	var dims []string
	if f.Type != "" {
		dims = append(dims, FilterType)
	}
	if f.Location != "" {
		dims = append(dims, FilterLocation)
	}
	if f.Tuition != "" {
		dims = append(dims, FilterTuition)
	}
	if f.SATRange != "" {
		dims = append(dims, FilterSATRange)
	}
	return dims
}

// predicates returns the active predicates, each bound to its criterion.
func (f Filters) predicates() []func(College) bool {
	var preds []func(College) bool
	if f.Query != "" {
		preds = append(preds, func(c College) bool { return MatchesQuery(c, f.Query) })
	}
	if f.Ranking != "" {
		preds = append(preds, func(c College) bool { return MatchesRankingTier(c, f.Ranking) })
	}
	if f.Acceptance != "" {
		preds = append(preds, func(c College) bool { return MatchesAcceptanceTier(c, f.Acceptance) })
	}
	if f.Program != "" {
		preds = append(preds, func(c College) bool { return HasProgram(c, f.Program) })
	}
	return preds
}

// Apply returns, in source order, the candidates accepted by every active predicate.
// candidates is never modified; the result is a new slice.
func Apply(candidates []College, f Filters) []College {
	result := make([]College, 0, len(candidates))
	if f.IsEmpty() {
		return append(result, candidates...)
	}
	preds := f.predicates()
	for _, c := range candidates {
		if matchesAll(c, preds) {
			result = append(result, c)
		}
	}
	return result
}

func matchesAll(c College, preds []func(College) bool) bool {
	for _, pred := range preds {
		if !pred(c) {
			return false
		}
	}
	return true
}
