package models

type LifeMapRequest struct {
	ProfileParams
	StartYear int `json:"startYear,omitempty"`
	Years     int `json:"years,omitempty"`
}

type Momentum struct {
	Delta int    `json:"delta"`
	Trend string `json:"trend"` // up, down, stable
}

type LifeMapPoint struct {
	Year       int      `json:"year"`
	GanZhi     string   `json:"ganZhi"`
	Overall    int      `json:"overall"`
	Career     int      `json:"career"`
	Wealth     int      `json:"wealth"`
	Romance    int      `json:"romance"`
	Health     int      `json:"health"`
	Academic   int      `json:"academic"`
	Travel     int      `json:"travel"`
	RiskLevel  string   `json:"riskLevel"`
	Confidence int      `json:"confidence"`
	Momentum   Momentum `json:"momentum"`
}

type LifeMapMilestone struct {
	Type   string `json:"type"`
	Year   int    `json:"year"`
	Title  string `json:"title"`
	Score  int    `json:"score"`
	Detail string `json:"detail"`
}

type LifeMapStrategyItem struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Priority string `json:"priority"`
}

type LifeMapSummary struct {
	Average        int    `json:"average"`
	Volatility     int    `json:"volatility"`
	Trend          string `json:"trend"`
	Confidence     int    `json:"confidence"`
	PeakYear       int    `json:"peakYear"`
	TroughYear     int    `json:"troughYear"`
	FailedYears    []int  `json:"failedYears"`
	MilestoneCount int    `json:"milestoneCount"`
}

type LifeMapData struct {
	StartYear   int                   `json:"startYear"`
	Years       int                   `json:"years"`
	Points      []LifeMapPoint        `json:"points"`
	Milestones  []LifeMapMilestone    `json:"milestones"`
	Summary     LifeMapSummary        `json:"summary"`
	Strategy    []LifeMapStrategyItem `json:"strategy"`
	FailedYears []int                 `json:"failedYears"`
}

type LifeMapEnvelope struct {
	Success bool         `json:"success"`
	Data    *LifeMapData `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
}
