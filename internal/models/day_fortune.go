package models

// DayFortune is the remote fortune snapshot for a single future date,
// used by the local recommendation fallback.
type DayFortune struct {
	DateStr    string     `json:"dateStr"`
	TotalScore int        `json:"totalScore"`
	MainTheme  MainTheme  `json:"mainTheme"`
	Dimensions Dimensions `json:"dimensions"`
}

type DayFortuneRequest struct {
	ProfileParams
	Date string `json:"date"`
}

type DayFortuneEnvelope struct {
	Success bool        `json:"success"`
	Data    *DayFortune `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
