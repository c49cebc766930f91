package analytics

// Score bands shared by calendar statistics and presentation. Kept as a
// lookup table so the thresholds stay testable on their own.
type bandRule struct {
	Min  int
	Name string
}

var bandTable = []bandRule{
	{85, "excellent"},
	{70, "good"},
	{60, "fair"},
	{50, "mediocre"},
}

func Band(score int) string {
	for _, r := range bandTable {
		if score >= r.Min {
			return r.Name
		}
	}
	return "poor"
}
