package models

// DayCell is one of the 42 cells of a 6x7 month grid.
type DayCell struct {
	Date           string `json:"date"`
	Day            int    `json:"day"`
	Score          *int   `json:"score"`
	Band           string `json:"band,omitempty"`
	IsToday        bool   `json:"isToday"`
	IsCurrentMonth bool   `json:"isCurrentMonth"`
	IsWeekend      bool   `json:"isWeekend"`
}

type MonthStats struct {
	Average  *int      `json:"average"`
	BestDays []DayCell `json:"bestDays"`
}

type MonthView struct {
	Month string     `json:"month"`
	Cells []DayCell  `json:"cells"`
	Stats MonthStats `json:"stats"`
}
