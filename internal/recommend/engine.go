package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"fortuned/internal/models"
	"fortuned/internal/providers"
	"fortuned/internal/remote"
	"fortuned/internal/structures"
)

const dateLayout = "2006-01-02"

// defaultDimensionScore stands in when a day's snapshot lacks the
// purpose's dimension, matching the remote service's neutral baseline.
const defaultDimensionScore = 50

const (
	minRangeDays = 3
	maxRangeDays = 60
	minTopN      = 3
	maxTopN      = 20
)

// Engine produces forward-looking, purpose-weighted date rankings. The
// remote ranking service is preferred; on any remote failure the engine
// scans the range locally, one sequential day-fortune fetch per date.
type Engine struct {
	client  remote.ClientInterface
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	conf    *structures.Config
	now     func() time.Time
}

func NewEngine(conf *structures.Config, client remote.ClientInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *Engine {
	return &Engine{
		client:  client,
		logger:  logger,
		metrics: metrics,
		conf:    conf,
		now:     time.Now,
	}
}

func (e *Engine) Recommend(ctx context.Context, req *models.RecommendRequest) (*models.RecommendationData, error) {
	e.normalize(req)

	data, err := e.client.RecommendDates(ctx, req)
	if err == nil {
		return data, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	e.logger.Warnf(providers.TypeApp, "Remote ranking unavailable, falling back to local scan: %s", err)
	e.metrics.IncFallbackScans()

	start := time.Now()
	data, err = e.localScan(ctx, req)
	e.metrics.ObserveScanDuration(time.Since(start))
	return data, err
}

// normalize clamps the request the same way the remote service does, so
// both paths see identical inputs.
func (e *Engine) normalize(req *models.RecommendRequest) {
	if _, ok := purposeDimension[req.Purpose]; !ok {
		req.Purpose = "other"
	}
	req.RangeDays = clampInt(req.RangeDays, minRangeDays, maxRangeDays, e.conf.Recommend.DefaultRangeDays)
	req.TopN = clampInt(req.TopN, minTopN, maxTopN, e.conf.Recommend.DefaultTopN)
	switch req.WeekendPolicy {
	case "all", "weekend_only", "workday_only":
	default:
		req.WeekendPolicy = "all"
	}
}

func clampInt(v, minV, maxV, def int) int {
	if v == 0 {
		return def
	}
	return max(minV, min(maxV, v))
}

// localScan enumerates [start, start+rangeDays), fetching each retained
// day's fortune strictly sequentially. Per-day failures are counted and
// skipped; a scan with zero candidates is an error, not an empty success.
func (e *Engine) localScan(ctx context.Context, req *models.RecommendRequest) (*models.RecommendationData, error) {
	start := e.parseStartDate(req.StartDate)
	excluded := make(map[string]struct{}, len(req.ExcludedDates))
	for _, d := range req.ExcludedDates {
		excluded[d] = struct{}{}
	}

	candidates := make([]models.DateRecommendation, 0, req.RangeDays)
	skipped := 0
	failed := 0

	for offset := 0; offset < req.RangeDays; offset++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		date := start.AddDate(0, 0, offset)
		dateStr := date.Format(dateLayout)

		if _, ok := excluded[dateStr]; ok {
			skipped++
			continue
		}
		weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
		if (req.WeekendPolicy == "weekend_only" && !weekend) ||
			(req.WeekendPolicy == "workday_only" && weekend) {
			skipped++
			continue
		}

		fortune, err := e.client.DayFortune(ctx, &models.DayFortuneRequest{
			ProfileParams: req.ProfileParams,
			Date:          dateStr,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			e.logger.Debugf(providers.TypeApp, "Day fortune fetch failed for %s: %s", dateStr, err)
			failed++
			continue
		}

		candidates = append(candidates, buildCandidate(req.Purpose, date, fortune))
	}

	if len(candidates) == 0 {
		return nil, errors.New("no usable dates in the requested range; adjust the filters and retry")
	}

	ranked := make([]models.DateRecommendation, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].PurposeScore != ranked[j].PurposeScore {
			return ranked[i].PurposeScore > ranked[j].PurposeScore
		}
		return ranked[i].Date < ranked[j].Date
	})
	recommendations := ranked
	if len(recommendations) > req.TopN {
		recommendations = recommendations[:req.TopN]
	}

	timeline := make([]models.DateRecommendation, len(candidates))
	copy(timeline, candidates)
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Date < timeline[j].Date
	})

	return &models.RecommendationData{
		Purpose:          req.Purpose,
		StartDate:        start.Format(dateLayout),
		RangeDays:        req.RangeDays,
		ScannedDays:      len(candidates),
		SkippedDays:      skipped,
		FailedDays:       failed,
		RecommendedCount: len(recommendations),
		Recommendations:  recommendations,
		Timeline:         timeline,
		Summary:          buildSummary(timeline, recommendations, failed),
	}, nil
}

func (e *Engine) parseStartDate(value string) time.Time {
	if value != "" {
		if d, err := time.Parse(dateLayout, value); err == nil {
			return d
		}
	}
	now := e.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// mondayIndexed converts Go's Sunday-first weekday to a Monday-first
// index, matching the remote service's convention on the wire.
func mondayIndexed(w time.Weekday) int {
	return (int(w) + 6) % 7
}

func buildCandidate(purpose string, date time.Time, fortune *models.DayFortune) models.DateRecommendation {
	dims := fortune.Dimensions.AsMap()
	total := fortune.TotalScore

	dimKey := purposeDimension[purpose]
	dimScore := total
	if dimKey != "overall" {
		dimScore = fortune.Dimensions.Get(dimKey, defaultDimensionScore)
	}

	purposeScore := int(math.Round(clampFloat(float64(dimScore)*0.65+float64(total)*0.35, 0, 100)))
	riskLevel, riskWeight := riskFor(purposeScore)
	confidence := clampInRange(purposeScore-riskWeight*4, 35, 95)
	weekday := mondayIndexed(date.Weekday())

	theme := fortune.MainTheme
	return models.DateRecommendation{
		Date:           date.Format(dateLayout),
		Weekday:        weekday,
		TotalScore:     total,
		PurposeScore:   purposeScore,
		Confidence:     confidence,
		RiskLevel:      riskLevel,
		RiskWeight:     riskWeight,
		RiskFlags:      riskFlags(purpose, weekday, total, purposeScore, dims),
		BestTimeWindow: timeWindow(purpose, weekday, purposeScore),
		MainTheme:      &theme,
		Dimensions:     dims,
		Highlights:     highlights(dims),
		Cautions:       cautions(dims),
		Tags:           tags(purposeScore, total, riskLevel),
	}
}

func timeWindow(purpose string, weekday, purposeScore int) string {
	slots, ok := timeWindows[purpose]
	if !ok {
		slots = timeWindows["other"]
	}
	pick := slots[weekday%len(slots)]
	if purposeScore > 80 {
		return pick + " (enhanced)"
	}
	return pick
}

func riskFlags(purpose string, weekday, total, purposeScore int, dims map[string]int) []string {
	flags := []string{}
	if total < 52 {
		flags = append(flags, "global_score_low")
	}
	if purposeScore < 58 {
		flags = append(flags, "purpose_score_low")
	}
	if core := purposeDimension[purpose]; core != "overall" && dims[core] < 55 {
		flags = append(flags, "core_dimension_weak")
	}
	if (purpose == "opening" || purpose == "academic") && weekday >= 5 {
		flags = append(flags, "weekend_mismatch")
	}
	if dims["health"] < 45 {
		flags = append(flags, "health_drag")
	}
	return flags
}

type dimEntry struct {
	Key   string
	Score int
}

func orderedDims(dims map[string]int) []dimEntry {
	entries := make([]dimEntry, 0, len(dimensionOrder))
	for _, key := range dimensionOrder {
		entries = append(entries, dimEntry{Key: key, Score: dims[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

func highlights(dims map[string]int) []string {
	ordered := orderedDims(dims)
	out := make([]string, 0, 2)
	for _, e := range ordered[:2] {
		out = append(out, fmt.Sprintf("Strong %s momentum (%d)", e.Key, e.Score))
	}
	return out
}

func cautions(dims map[string]int) []string {
	ordered := orderedDims(dims)
	out := make([]string, 0, 2)
	for i := len(ordered) - 1; i >= 0 && len(out) < 2; i-- {
		if ordered[i].Score < 58 {
			out = append(out, fmt.Sprintf("Weak %s (%d), act conservatively", ordered[i].Key, ordered[i].Score))
		}
	}
	if len(out) == 0 {
		out = append(out, "Overall risk is manageable; proceed as planned")
	}
	return out
}

func tags(purposeScore, total int, riskLevel string) []string {
	out := []string{}
	if purposeScore >= 88 {
		out = append(out, "high purpose fit")
	}
	if total >= 85 {
		out = append(out, "peak momentum")
	}
	if riskLevel == "low" {
		out = append(out, "low risk")
	}
	if len(out) == 0 {
		out = append(out, "balanced choice")
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

func buildSummary(timeline, recommendations []models.DateRecommendation, failedDays int) models.RecommendSummary {
	best := recommendations[0]
	worst := timeline[len(timeline)-1]

	mid := len(timeline) / 2
	firstHalf := timeline[:max(1, mid)]
	secondHalf := timeline[mid:]

	firstAvg := meanPurposeScore(firstHalf)
	secondAvg := meanPurposeScore(secondHalf)

	trend := "stable"
	if secondAvg > firstAvg+4 {
		trend = "rising"
	} else if firstAvg > secondAvg+4 {
		trend = "falling"
	}

	confSum := 0
	for _, d := range timeline {
		confSum += d.Confidence
	}

	return models.RecommendSummary{
		BestDate:          best.Date,
		BestScore:         best.PurposeScore,
		WorstDate:         worst.Date,
		WorstScore:        worst.PurposeScore,
		Trend:             trend,
		AverageConfidence: int(math.Round(float64(confSum) / float64(len(timeline)))),
		FailedDays:        failedDays,
	}
}

func meanPurposeScore(days []models.DateRecommendation) float64 {
	if len(days) == 0 {
		return 0
	}
	sum := 0
	for _, d := range days {
		sum += d.PurposeScore
	}
	return float64(sum) / float64(len(days))
}

func clampFloat(v, minV, maxV float64) float64 {
	return math.Max(minV, math.Min(maxV, v))
}

func clampInRange(v, minV, maxV int) int {
	return max(minV, min(maxV, v))
}
