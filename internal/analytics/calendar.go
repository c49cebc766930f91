package analytics

import (
	"math"
	"sort"
	"time"

	"fortuned/internal/models"
)

// ScoreLookup resolves a YYYY-MM-DD key to a known historical score.
type ScoreLookup func(dateKey string) (int, bool)

// CalendarAggregator builds a fixed 6x7 month grid annotated with
// historical scores.
type CalendarAggregator struct {
	now func() time.Time
}

func NewCalendarAggregator() *CalendarAggregator {
	return &CalendarAggregator{now: time.Now}
}

const gridCells = 42

// BuildMonth produces exactly 42 cells: leading days of the previous
// month to align the first weekday, the target month, and trailing days
// of the next month.
func (ca *CalendarAggregator) BuildMonth(viewDate time.Time, lookup ScoreLookup) []models.DayCell {
	year, month, _ := viewDate.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, viewDate.Location())
	today := ca.now().Format(dateLayout)

	cells := make([]models.DayCell, 0, gridCells)

	lead := int(first.Weekday())
	for i := lead; i > 0; i-- {
		cells = append(cells, ca.cell(first.AddDate(0, 0, -i), false, today, lookup))
	}

	daysInMonth := first.AddDate(0, 1, -1).Day()
	for day := 0; day < daysInMonth; day++ {
		cells = append(cells, ca.cell(first.AddDate(0, 0, day), true, today, lookup))
	}

	next := first.AddDate(0, 1, 0)
	for day := 0; len(cells) < gridCells; day++ {
		cells = append(cells, ca.cell(next.AddDate(0, 0, day), false, today, lookup))
	}

	return cells
}

func (ca *CalendarAggregator) cell(date time.Time, isCurrentMonth bool, today string, lookup ScoreLookup) models.DayCell {
	dateStr := date.Format(dateLayout)
	weekday := date.Weekday()

	cell := models.DayCell{
		Date:           dateStr,
		Day:            date.Day(),
		IsToday:        dateStr == today,
		IsCurrentMonth: isCurrentMonth,
		IsWeekend:      weekday == time.Saturday || weekday == time.Sunday,
	}
	if score, ok := lookup(dateStr); ok {
		cell.Score = &score
		cell.Band = Band(score)
	}
	return cell
}

// Stats summarizes the current-month cells with a known score: rounded
// average plus the three best days. Ties keep date-ascending order.
func (ca *CalendarAggregator) Stats(cells []models.DayCell) models.MonthStats {
	scored := make([]models.DayCell, 0, len(cells))
	sum := 0
	for _, c := range cells {
		if c.IsCurrentMonth && c.Score != nil {
			scored = append(scored, c)
			sum += *c.Score
		}
	}

	if len(scored) == 0 {
		return models.MonthStats{Average: nil, BestDays: []models.DayCell{}}
	}

	avg := int(math.Round(float64(sum) / float64(len(scored))))

	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].Score > *scored[j].Score
	})
	if len(scored) > 3 {
		scored = scored[:3]
	}

	return models.MonthStats{Average: &avg, BestDays: scored}
}
