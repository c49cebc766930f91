package models

type MainTheme struct {
	Keyword string `json:"keyword"`
	Emoji   string `json:"emoji"`
}

type DimensionScore struct {
	Score int `json:"score" validate:"min:0|max:100"`
}

// Dimensions holds the six fixed life-aspect scores of a single day.
type Dimensions struct {
	Career   DimensionScore `json:"career"`
	Wealth   DimensionScore `json:"wealth"`
	Romance  DimensionScore `json:"romance"`
	Health   DimensionScore `json:"health"`
	Academic DimensionScore `json:"academic"`
	Travel   DimensionScore `json:"travel"`
}

// AsMap projects the dimensions into a key→score map. Keys match the
// wire names used by the remote endpoints.
func (d *Dimensions) AsMap() map[string]int {
	return map[string]int{
		"career":   d.Career.Score,
		"wealth":   d.Wealth.Score,
		"romance":  d.Romance.Score,
		"health":   d.Health.Score,
		"academic": d.Academic.Score,
		"travel":   d.Travel.Score,
	}
}

// Get returns the score of a named dimension, falling back to the given
// default for unknown keys.
func (d *Dimensions) Get(key string, def int) int {
	if v, ok := d.AsMap()[key]; ok {
		return v
	}
	return def
}

type Fortune struct {
	TotalScore int        `json:"totalScore" validate:"min:0|max:100"`
	MainTheme  MainTheme  `json:"mainTheme"`
	Dimensions Dimensions `json:"dimensions"`
}

// HistoryRecord is one persisted daily fortune snapshot. Date is the
// unique store key, Timestamp is only used for recency ordering.
type HistoryRecord struct {
	Date      string  `json:"date" validate:"required|regexp:^\\d{4}-\\d{2}-\\d{2}$"`
	Timestamp int64   `json:"timestamp" validate:"required|min:1"`
	Fortune   Fortune `json:"fortune"`
}

type HistoryStats struct {
	Total     int            `json:"total"`
	AvgScore  int            `json:"avgScore"`
	MaxRecord *HistoryRecord `json:"maxRecord"`
	MinRecord *HistoryRecord `json:"minRecord"`
}
