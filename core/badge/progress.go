package badge

type step struct {
	min   float64
	color string
}

// Scale buckets a percentage into a bar colour.
type Scale struct {
	steps    []step // highest min first
	fallback string
}

var (
	// ApplicationScale colours the application list progress bars.
	ApplicationScale = Scale{
		steps:    []step{{80, "bg-green-500"}, {50, "bg-blue-500"}, {25, "bg-yellow-500"}},
		fallback: "bg-gray-300",
	}

	// TrackerScale colours the dashboard progress tracker.
	TrackerScale = Scale{
		steps:    []step{{80, "bg-green-500"}, {50, "bg-blue-500"}, {25, "bg-yellow-500"}},
		fallback: "bg-red-500",
	}

	// GoalScale colours course planning goals.
	GoalScale = Scale{
		steps:    []step{{75, "bg-green-500"}, {50, "bg-blue-500"}, {25, "bg-yellow-500"}},
		fallback: "bg-red-500",
	}
)

func (s Scale) Color(percent float64) string {
	for _, st := range s.steps {
		if percent >= st.min {
			return st.color
		}
	}
	return s.fallback
}
