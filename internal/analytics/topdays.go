package analytics

import (
	"sort"
	"time"

	"fortuned/internal/history"
	"fortuned/internal/models"
)

// TopDaySelector ranks historical snapshots by total score.
type TopDaySelector struct {
	store history.StoreInterface
	now   func() time.Time
}

func NewTopDaySelector(store history.StoreInterface) *TopDaySelector {
	return &TopDaySelector{store: store, now: time.Now}
}

// TopDays returns the limit highest-scoring days. The stable sort keeps
// the store's recency order on ties, so the more recent day ranks first.
func (ts *TopDaySelector) TopDays(limit int) []models.TrendPoint {
	now := ts.now()
	records := ts.store.List()

	points := make([]models.TrendPoint, 0, len(records))
	for _, rec := range records {
		points = append(points, toTrendPoint(now, rec))
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Score > points[j].Score
	})

	if limit > 0 && len(points) > limit {
		points = points[:limit]
	}
	return points
}
