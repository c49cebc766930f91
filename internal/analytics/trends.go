package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"fortuned/internal/history"
	"fortuned/internal/models"
)

const dateLayout = "2006-01-02"

// TrendAnalyzer derives direction, volatility and a textual suggestion
// from the recent history window. Pure computation over store reads.
type TrendAnalyzer struct {
	store history.StoreInterface
	now   func() time.Time
}

func NewTrendAnalyzer(store history.StoreInterface) *TrendAnalyzer {
	return &TrendAnalyzer{store: store, now: time.Now}
}

// dateLabel renders a history date relative to now: today, yesterday,
// else M/D.
func dateLabel(now time.Time, dateStr string) string {
	if dateStr == now.Format(dateLayout) {
		return "today"
	}
	if dateStr == now.AddDate(0, 0, -1).Format(dateLayout) {
		return "yesterday"
	}
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%d/%d", int(d.Month()), d.Day())
}

func toTrendPoint(now time.Time, rec models.HistoryRecord) models.TrendPoint {
	return models.TrendPoint{
		Date:    rec.Date,
		Score:   rec.Fortune.TotalScore,
		Label:   dateLabel(now, rec.Date),
		Keyword: rec.Fortune.MainTheme.Keyword,
		Emoji:   rec.Fortune.MainTheme.Emoji,
	}
}

// window returns the last n records ordered oldest to newest by date.
func (ta *TrendAnalyzer) window(days int) []models.HistoryRecord {
	records := ta.store.List()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
	if days > 0 && len(records) > days {
		records = records[len(records)-days:]
	}
	return records
}

func (ta *TrendAnalyzer) RecentTrends(days int) []models.TrendPoint {
	now := ta.now()
	window := ta.window(days)
	points := make([]models.TrendPoint, 0, len(window))
	for _, rec := range window {
		points = append(points, toTrendPoint(now, rec))
	}
	return points
}

func (ta *TrendAnalyzer) DimensionTrends(days int) []models.DimensionTrendPoint {
	window := ta.window(days)
	points := make([]models.DimensionTrendPoint, 0, len(window))
	for _, rec := range window {
		d := rec.Fortune.Dimensions
		points = append(points, models.DimensionTrendPoint{
			Date:     rec.Date,
			Career:   d.Career.Score,
			Wealth:   d.Wealth.Score,
			Romance:  d.Romance.Score,
			Health:   d.Health.Score,
			Academic: d.Academic.Score,
			Travel:   d.Travel.Score,
		})
	}
	return points
}

// Analyze classifies the recent window. Returns nil with fewer than two
// points; that is an insufficient-data signal, not an error.
func (ta *TrendAnalyzer) Analyze(days int) *models.TrendAnalysis {
	trends := ta.RecentTrends(days)
	if len(trends) < 2 {
		return nil
	}

	sum := 0
	maxDay := trends[0]
	minDay := trends[0]
	for _, t := range trends {
		sum += t.Score
		if t.Score > maxDay.Score {
			maxDay = t
		}
		if t.Score < minDay.Score {
			minDay = t
		}
	}
	avgScore := int(math.Round(float64(sum) / float64(len(trends))))

	mid := len(trends) / 2
	firstAvg := meanScore(trends[:mid])
	secondAvg := meanScore(trends[mid:])

	trend := "stable"
	if secondAvg > firstAvg+5 {
		trend = "up"
	} else if secondAvg < firstAvg-5 {
		trend = "down"
	}

	variance := 0.0
	for _, t := range trends {
		diff := float64(t.Score - avgScore)
		variance += diff * diff
	}
	variance /= float64(len(trends))
	stdDev := math.Sqrt(variance)

	volatility := "low"
	if stdDev > 15 {
		volatility = "high"
	} else if stdDev > 8 {
		volatility = "medium"
	}

	return &models.TrendAnalysis{
		Trend:      trend,
		AvgScore:   avgScore,
		MaxDay:     models.TrendDay{Date: maxDay.Date, Score: maxDay.Score, Keyword: maxDay.Keyword},
		MinDay:     models.TrendDay{Date: minDay.Date, Score: minDay.Score, Keyword: minDay.Keyword},
		Volatility: volatility,
		Suggestion: suggestionFor(trend, avgScore, volatility),
	}
}

func meanScore(points []models.TrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0
	for _, p := range points {
		sum += p.Score
	}
	return float64(sum) / float64(len(points))
}

// suggestionFor is a fixed decision table keyed on trend, average level
// and volatility.
func suggestionFor(trend string, avgScore int, volatility string) string {
	switch trend {
	case "up":
		if avgScore >= 75 {
			return "Momentum keeps rising; this is the time to push forward and stay on the offensive."
		}
		return "Fortunes are recovering; there is room to grow, but the window of opportunity is forming."
	case "down":
		if avgScore < 60 {
			return "You are in a trough; conserve energy, focus inward and wait for the turn."
		}
		return "A mild dip, but the overall level holds; slow the pace and avoid rash moves."
	default:
		if volatility == "high" {
			return "Scores swing widely day to day; keep a level head and avoid overreacting."
		}
		if avgScore >= 75 {
			return "Stable at a high level; keep your current rhythm going."
		}
		return "Flat with no big swings either way; consider actively seeking a new opportunity."
	}
}
