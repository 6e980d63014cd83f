package college

import (
	"strconv"
	"strings"
)

// Ranking tiers
const (
	RankingTop10 = "top-10"
	RankingTop25 = "top-25"
	RankingTop50 = "top-50"
)

// Acceptance tiers
const (
	AcceptanceVerySelective = "very-selective"
	AcceptanceSelective     = "selective"
	AcceptanceModerate      = "moderate"
)

var rankingCeilings = map[string]int{
	RankingTop10: 10,
	RankingTop25: 25,
	RankingTop50: 50,
}

// acceptanceBound is a percentage interval; a nil end is unbounded.
type acceptanceBound struct {
	min, max     *int
	exclusiveMax bool
}

func (b acceptanceBound) contains(rate int) bool {
	if b.min != nil && rate < *b.min {
		return false
	}
	if b.max != nil {
		if b.exclusiveMax && rate >= *b.max {
			return false
		}
		if !b.exclusiveMax && rate > *b.max {
			return false
		}
	}
	return true
}

func intPtr(i int) *int { return &i }

var acceptanceBounds = map[string]acceptanceBound{
	AcceptanceVerySelective: {max: intPtr(10), exclusiveMax: true},
	AcceptanceSelective:     {min: intPtr(10), max: intPtr(25)},
	AcceptanceModerate:      {min: intPtr(25), max: intPtr(50)},
}

// MatchesQuery does a case-insensitive substring match of query on the college name.
func MatchesQuery(c College, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(query))
}

// MatchesRankingTier requires a national ranking at or under the tier's ceiling.
// Unranked colleges never match a tier. Unknown tiers do not filter.
func MatchesRankingTier(c College, tier string) bool {
	if tier == "" {
		return true
	}
	ceiling, ok := rankingCeilings[tier]
	if !ok {
		return true
	}
	rank, ok := c.NationalRank()
	if !ok || rank <= 0 {
		return false
	}
	return rank <= ceiling
}

// MatchesAcceptanceTier requires the parsed acceptance rate to fall within the tier's bound.
// Colleges whose acceptance does not parse never match a tier. Unknown tiers do not filter.
func MatchesAcceptanceTier(c College, tier string) bool {
	if tier == "" {
		return true
	}
	bound, ok := acceptanceBounds[tier]
	if !ok {
		return true
	}
	rate, ok := ParseAcceptance(c.Acceptance)
	if !ok {
		return false
	}
	return bound.contains(rate)
}

// HasProgram is an exact, case-sensitive membership test.
func HasProgram(c College, program string) bool {
	if program == "" {
		return true
	}
	for _, p := range c.Programs {
		if p == program {
			return true
		}
	}
	return false
}

// ParseAcceptance reads the leading integer of an acceptance string: "4%" -> 4, "4.5%" -> 4.
// ok is false when there are no leading digits, eg. "N/A".
func ParseAcceptance(s string) (rate int, ok bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	rate, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return rate, true
}
