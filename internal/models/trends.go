package models

// TrendPoint is a single chartable day derived from a HistoryRecord.
type TrendPoint struct {
	Date    string `json:"date"`
	Score   int    `json:"score"`
	Label   string `json:"label"`
	Keyword string `json:"keyword"`
	Emoji   string `json:"emoji"`
}

// DimensionTrendPoint projects the six dimension scores of one day.
type DimensionTrendPoint struct {
	Date     string `json:"date"`
	Career   int    `json:"career"`
	Wealth   int    `json:"wealth"`
	Romance  int    `json:"romance"`
	Health   int    `json:"health"`
	Academic int    `json:"academic"`
	Travel   int    `json:"travel"`
}

type TrendDay struct {
	Date    string `json:"date"`
	Score   int    `json:"score"`
	Keyword string `json:"keyword"`
}

type TrendAnalysis struct {
	Trend      string   `json:"trend"` // up, down, stable
	AvgScore   int      `json:"avgScore"`
	MaxDay     TrendDay `json:"maxDay"`
	MinDay     TrendDay `json:"minDay"`
	Volatility string   `json:"volatility"` // high, medium, low
	Suggestion string   `json:"suggestion"`
}
