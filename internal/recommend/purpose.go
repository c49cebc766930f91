package recommend

// Static lookup tables for the purpose-weighted ranking. Kept data-driven
// so the thresholds are testable without touching the scan loop.

// purposeDimension maps a stated purpose to the dimension that carries it.
// "overall" means the day's total score stands in for the dimension.
var purposeDimension = map[string]string{
	"moving":   "career",
	"opening":  "wealth",
	"travel":   "travel",
	"romance":  "romance",
	"wealth":   "wealth",
	"academic": "academic",
	"other":    "overall",
}

// timeWindows lists three candidate windows per purpose; the scan picks
// one by weekday.
var timeWindows = map[string][3]string{
	"moving":   {"07:00-09:00", "09:00-11:00", "13:00-15:00"},
	"opening":  {"09:00-11:00", "11:00-13:00", "15:00-17:00"},
	"travel":   {"07:00-09:00", "13:00-15:00", "17:00-19:00"},
	"romance":  {"11:00-13:00", "15:00-17:00", "19:00-21:00"},
	"wealth":   {"09:00-11:00", "13:00-15:00", "15:00-17:00"},
	"academic": {"07:00-09:00", "09:00-11:00", "19:00-21:00"},
	"other":    {"09:00-11:00", "13:00-15:00", "15:00-17:00"},
}

type riskBand struct {
	MinScore int
	Level    string
	Weight   int
}

// riskTable classifies a purpose score into a risk tier; the weight later
// discounts confidence.
var riskTable = []riskBand{
	{78, "low", 1},
	{60, "medium", 2},
	{0, "high", 4},
}

func riskFor(purposeScore int) (string, int) {
	for _, band := range riskTable {
		if purposeScore >= band.MinScore {
			return band.Level, band.Weight
		}
	}
	last := riskTable[len(riskTable)-1]
	return last.Level, last.Weight
}

// dimensionOrder fixes the canonical iteration order for explanations.
var dimensionOrder = []string{"career", "wealth", "romance", "health", "academic", "travel"}
