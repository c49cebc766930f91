package models

import json "github.com/goccy/go-json"

// ProfileParams carries the birth/profile inputs required by the remote
// services. CustomYongShen is opaque to this service and passed through
// verbatim.
type ProfileParams struct {
	BirthDate      string          `json:"birthDate" validate:"required|regexp:^\\d{4}-\\d{2}-\\d{2}$"`
	BirthTime      string          `json:"birthTime,omitempty"`
	Longitude      float64         `json:"longitude"`
	Gender         string          `json:"gender,omitempty"`
	CustomYongShen json.RawMessage `json:"customYongShen,omitempty"`
}

type RecommendRequest struct {
	ProfileParams
	Purpose       string   `json:"purpose"`
	RangeDays     int      `json:"rangeDays"`
	TopN          int      `json:"topN,omitempty"`
	StartDate     string   `json:"startDate,omitempty"`
	WeekendPolicy string   `json:"weekendPolicy,omitempty"`
	ExcludedDates []string `json:"excludedDates,omitempty"`
}

// DateRecommendation is one scanned candidate day. Ephemeral, never persisted.
type DateRecommendation struct {
	Date           string         `json:"date"`
	Weekday        int            `json:"weekday"`
	TotalScore     int            `json:"totalScore"`
	PurposeScore   int            `json:"purposeScore"`
	Confidence     int            `json:"confidence"`
	RiskLevel      string         `json:"riskLevel"` // low, medium, high
	RiskWeight     int            `json:"riskWeight"`
	RiskFlags      []string       `json:"riskFlags"`
	BestTimeWindow string         `json:"bestTimeWindow"`
	MainTheme      *MainTheme     `json:"mainTheme,omitempty"`
	Dimensions     map[string]int `json:"dimensions"`
	Highlights     []string       `json:"highlights"`
	Cautions       []string       `json:"cautions"`
	Tags           []string       `json:"tags"`
}

type RecommendSummary struct {
	BestDate          string `json:"bestDate"`
	BestScore         int    `json:"bestScore"`
	WorstDate         string `json:"worstDate"`
	WorstScore        int    `json:"worstScore"`
	Trend             string `json:"trend"` // rising, stable, falling
	AverageConfidence int    `json:"averageConfidence"`
	FailedDays        int    `json:"failedDays"`
}

type RecommendationData struct {
	Purpose          string               `json:"purpose"`
	StartDate        string               `json:"startDate"`
	RangeDays        int                  `json:"rangeDays"`
	ScannedDays      int                  `json:"scannedDays"`
	SkippedDays      int                  `json:"skippedDays"`
	FailedDays       int                  `json:"failedDays"`
	RecommendedCount int                  `json:"recommendedCount"`
	Recommendations  []DateRecommendation `json:"recommendations"`
	Timeline         []DateRecommendation `json:"timeline"`
	Summary          RecommendSummary     `json:"summary"`
}

type RecommendEnvelope struct {
	Success bool                `json:"success"`
	Data    *RecommendationData `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
}
