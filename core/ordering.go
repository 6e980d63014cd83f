package core

import "strings"

type Ordering struct {
	Field     string
	Ascending bool
}

// ParseOrdering parses a comma separated list of fields, a "-" prefix meaning descending.
// eg. "name,-date_added"
func ParseOrdering(s string) []Ordering {
	var orderings []Ordering
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		if field == "" {
			continue
		}
		orderings = append(orderings, Ordering{Field: field, Ascending: !descending})
	}
	return orderings
}
