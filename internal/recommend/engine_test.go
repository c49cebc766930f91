package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fortuned/internal/models"
	"fortuned/internal/providers"
	"fortuned/internal/structures"
	"fortuned/internal/testutil"
)

func engineConfig() *structures.Config {
	return &structures.Config{
		Recommend: structures.RecommendConfig{
			DefaultRangeDays: 14,
			DefaultTopN:      10,
		},
	}
}

func newTestEngine(client *testutil.MockFortuneClient) *Engine {
	metrics := providers.NewMetricsProvider(&structures.Config{})
	e := NewEngine(engineConfig(), client, &testutil.MockLogger{}, metrics)
	e.now = func() time.Time {
		return time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	}
	return e
}

func dayFortune(total, wealth int) *models.DayFortune {
	f := &models.DayFortune{TotalScore: total}
	f.Dimensions.Career.Score = total
	f.Dimensions.Wealth.Score = wealth
	f.Dimensions.Romance.Score = total
	f.Dimensions.Health.Score = total
	f.Dimensions.Academic.Score = total
	f.Dimensions.Travel.Score = total
	return f
}

func wealthRequest(rangeDays int) *models.RecommendRequest {
	return &models.RecommendRequest{
		ProfileParams: models.ProfileParams{BirthDate: "1990-05-12"},
		Purpose:       "wealth",
		RangeDays:     rangeDays,
		StartDate:     "2025-09-19",
	}
}

func TestRecommend_RemoteFirst(t *testing.T) {
	remoteData := &models.RecommendationData{Purpose: "wealth", RangeDays: 14}
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return remoteData, nil
		},
	}
	e := newTestEngine(client)

	data, err := e.Recommend(context.Background(), wealthRequest(14))
	require.NoError(t, err)
	assert.Same(t, remoteData, data)
	assert.Empty(t, client.DayFortuneCalls)
}

func TestRecommend_FallbackScansSequentially(t *testing.T) {
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return nil, errors.New("remote down")
		},
		DayFortuneFn: func(_ context.Context, req *models.DayFortuneRequest) (*models.DayFortune, error) {
			return dayFortune(70, 75), nil
		},
	}
	e := newTestEngine(client)

	data, err := e.Recommend(context.Background(), wealthRequest(3))
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-09-19", "2025-09-20", "2025-09-21"}, client.DayFortuneCalls)
	assert.Equal(t, 3, data.ScannedDays)
	assert.Equal(t, 0, data.SkippedDays)
	assert.Equal(t, 0, data.FailedDays)
	assert.Len(t, data.Timeline, 3)
}

func TestRecommend_CanceledContextSkipsFallback(t *testing.T) {
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return nil, errors.New("remote down")
		},
	}
	e := newTestEngine(client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Recommend(ctx, wealthRequest(3))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, client.DayFortuneCalls)
}

func TestNormalize_Clamps(t *testing.T) {
	e := newTestEngine(&testutil.MockFortuneClient{})

	req := &models.RecommendRequest{Purpose: "world-domination", RangeDays: 100, TopN: 1, WeekendPolicy: "sometimes"}
	e.normalize(req)
	assert.Equal(t, "other", req.Purpose)
	assert.Equal(t, 60, req.RangeDays)
	assert.Equal(t, 3, req.TopN)
	assert.Equal(t, "all", req.WeekendPolicy)

	req = &models.RecommendRequest{Purpose: "wealth"}
	e.normalize(req)
	assert.Equal(t, 14, req.RangeDays)
	assert.Equal(t, 10, req.TopN)

	req = &models.RecommendRequest{RangeDays: 1, TopN: 50}
	e.normalize(req)
	assert.Equal(t, 3, req.RangeDays)
	assert.Equal(t, 20, req.TopN)
}

func TestLocalScan_WeekendPolicy(t *testing.T) {
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return nil, errors.New("remote down")
		},
		DayFortuneFn: func(_ context.Context, _ *models.DayFortuneRequest) (*models.DayFortune, error) {
			return dayFortune(70, 75), nil
		},
	}
	e := newTestEngine(client)

	// 2025-09-19 Fri, 20 Sat, 21 Sun, 22 Mon, 23 Tue
	req := wealthRequest(5)
	req.WeekendPolicy = "workday_only"

	data, err := e.Recommend(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-09-19", "2025-09-22", "2025-09-23"}, client.DayFortuneCalls)
	assert.Equal(t, 2, data.SkippedDays)
}

func TestLocalScan_WeekendOnly(t *testing.T) {
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return nil, errors.New("remote down")
		},
		DayFortuneFn: func(_ context.Context, _ *models.DayFortuneRequest) (*models.DayFortune, error) {
			return dayFortune(70, 75), nil
		},
	}
	e := newTestEngine(client)

	req := wealthRequest(5)
	req.WeekendPolicy = "weekend_only"

	_, err := e.Recommend(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-09-20", "2025-09-21"}, client.DayFortuneCalls)
}

func TestLocalScan_ExcludedDates(t *testing.T) {
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return nil, errors.New("remote down")
		},
		DayFortuneFn: func(_ context.Context, _ *models.DayFortuneRequest) (*models.DayFortune, error) {
			return dayFortune(70, 75), nil
		},
	}
	e := newTestEngine(client)

	req := wealthRequest(3)
	req.ExcludedDates = []string{"2025-09-20"}

	data, err := e.Recommend(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-09-19", "2025-09-21"}, client.DayFortuneCalls)
	assert.Equal(t, 1, data.SkippedDays)
}

func TestLocalScan_PerDayFailuresCounted(t *testing.T) {
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return nil, errors.New("remote down")
		},
		DayFortuneFn: func(_ context.Context, req *models.DayFortuneRequest) (*models.DayFortune, error) {
			if req.Date == "2025-09-20" {
				return nil, errors.New("timeout")
			}
			return dayFortune(70, 75), nil
		},
	}
	e := newTestEngine(client)

	data, err := e.Recommend(context.Background(), wealthRequest(3))
	require.NoError(t, err)
	assert.Equal(t, 2, data.ScannedDays)
	assert.Equal(t, 1, data.FailedDays)
	assert.Equal(t, 1, data.Summary.FailedDays)
}

func TestLocalScan_AllDaysFail(t *testing.T) {
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return nil, errors.New("remote down")
		},
		DayFortuneFn: func(_ context.Context, _ *models.DayFortuneRequest) (*models.DayFortune, error) {
			return nil, errors.New("timeout")
		},
	}
	e := newTestEngine(client)

	_, err := e.Recommend(context.Background(), wealthRequest(3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable dates")
}

func TestLocalScan_CancelMidScan(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return nil, errors.New("remote down")
		},
		DayFortuneFn: func(_ context.Context, _ *models.DayFortuneRequest) (*models.DayFortune, error) {
			cancel()
			return dayFortune(70, 75), nil
		},
	}
	e := newTestEngine(client)

	_, err := e.Recommend(ctx, wealthRequest(5))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, client.DayFortuneCalls, 1)
}

func TestLocalScan_RankingAndTies(t *testing.T) {
	scores := map[string]int{
		"2025-09-19": 60,
		"2025-09-20": 90,
		"2025-09-21": 90,
	}
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return nil, errors.New("remote down")
		},
		DayFortuneFn: func(_ context.Context, req *models.DayFortuneRequest) (*models.DayFortune, error) {
			s := scores[req.Date]
			return dayFortune(s, s), nil
		},
	}
	e := newTestEngine(client)

	data, err := e.Recommend(context.Background(), wealthRequest(3))
	require.NoError(t, err)

	require.Len(t, data.Recommendations, 3)
	// Equal purpose scores resolve by earlier date.
	assert.Equal(t, "2025-09-20", data.Recommendations[0].Date)
	assert.Equal(t, "2025-09-21", data.Recommendations[1].Date)
	assert.Equal(t, "2025-09-19", data.Recommendations[2].Date)

	// Timeline stays chronological regardless of rank.
	assert.Equal(t, "2025-09-19", data.Timeline[0].Date)
	assert.Equal(t, "2025-09-21", data.Timeline[2].Date)
}

func TestLocalScan_TopNTruncates(t *testing.T) {
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return nil, errors.New("remote down")
		},
		DayFortuneFn: func(_ context.Context, _ *models.DayFortuneRequest) (*models.DayFortune, error) {
			return dayFortune(70, 75), nil
		},
	}
	e := newTestEngine(client)

	req := wealthRequest(7)
	req.TopN = 3

	data, err := e.Recommend(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, data.Recommendations, 3)
	assert.Equal(t, 3, data.RecommendedCount)
	assert.Len(t, data.Timeline, 7)
}

func TestLocalScan_DefaultStartDateIsToday(t *testing.T) {
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return nil, errors.New("remote down")
		},
		DayFortuneFn: func(_ context.Context, _ *models.DayFortuneRequest) (*models.DayFortune, error) {
			return dayFortune(70, 75), nil
		},
	}
	e := newTestEngine(client)

	req := wealthRequest(3)
	req.StartDate = ""

	data, err := e.Recommend(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-15", data.StartDate)
	assert.Equal(t, "2025-09-15", client.DayFortuneCalls[0])
}

func TestBuildCandidate_WealthScoring(t *testing.T) {
	// wealth 90, total 82: purpose score 90*0.65 + 82*0.35 = 87.2 -> 87
	date := time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC) // Saturday
	cand := buildCandidate("wealth", date, dayFortune(82, 90))

	assert.Equal(t, 87, cand.PurposeScore)
	assert.Equal(t, "low", cand.RiskLevel)
	assert.Equal(t, 1, cand.RiskWeight)
	assert.Equal(t, 83, cand.Confidence)
	assert.Equal(t, 5, cand.Weekday)
	assert.Equal(t, "15:00-17:00 (enhanced)", cand.BestTimeWindow)
}

func TestBuildCandidate_OtherUsesTotal(t *testing.T) {
	date := time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)
	cand := buildCandidate("other", date, dayFortune(60, 95))

	// dim = total for "other": 60*0.65 + 60*0.35 = 60
	assert.Equal(t, 60, cand.PurposeScore)
	assert.Equal(t, "medium", cand.RiskLevel)
	assert.Equal(t, 2, cand.RiskWeight)
	assert.Equal(t, 52, cand.Confidence)
}

func TestBuildCandidate_ConfidenceFloor(t *testing.T) {
	date := time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)
	cand := buildCandidate("wealth", date, dayFortune(20, 20))

	assert.Equal(t, "high", cand.RiskLevel)
	assert.Equal(t, 35, cand.Confidence)
}

func TestBuildCandidate_RiskFlags(t *testing.T) {
	f := dayFortune(50, 40)
	f.Dimensions.Health.Score = 40
	date := time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC) // Saturday

	cand := buildCandidate("wealth", date, f)
	assert.Contains(t, cand.RiskFlags, "global_score_low")
	assert.Contains(t, cand.RiskFlags, "purpose_score_low")
	assert.Contains(t, cand.RiskFlags, "core_dimension_weak")
	assert.Contains(t, cand.RiskFlags, "health_drag")
	assert.NotContains(t, cand.RiskFlags, "weekend_mismatch")
}

func TestBuildCandidate_WeekendMismatch(t *testing.T) {
	date := time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC) // Saturday
	cand := buildCandidate("opening", date, dayFortune(80, 80))
	assert.Contains(t, cand.RiskFlags, "weekend_mismatch")

	monday := time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)
	cand = buildCandidate("opening", monday, dayFortune(80, 80))
	assert.NotContains(t, cand.RiskFlags, "weekend_mismatch")
}

func TestBuildCandidate_HighlightsAndCautions(t *testing.T) {
	f := &models.DayFortune{TotalScore: 70}
	f.Dimensions.Career.Score = 92
	f.Dimensions.Wealth.Score = 88
	f.Dimensions.Romance.Score = 70
	f.Dimensions.Health.Score = 40
	f.Dimensions.Academic.Score = 50
	f.Dimensions.Travel.Score = 70

	date := time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)
	cand := buildCandidate("other", date, f)

	require.Len(t, cand.Highlights, 2)
	assert.Equal(t, "Strong career momentum (92)", cand.Highlights[0])
	assert.Equal(t, "Strong wealth momentum (88)", cand.Highlights[1])

	require.Len(t, cand.Cautions, 2)
	assert.Equal(t, "Weak health (40), act conservatively", cand.Cautions[0])
	assert.Equal(t, "Weak academic (50), act conservatively", cand.Cautions[1])
}

func TestBuildCandidate_NoWeakDimensions(t *testing.T) {
	date := time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)
	cand := buildCandidate("other", date, dayFortune(80, 80))

	require.Len(t, cand.Cautions, 1)
	assert.Equal(t, "Overall risk is manageable; proceed as planned", cand.Cautions[0])
}

func TestBuildCandidate_Tags(t *testing.T) {
	date := time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)

	high := buildCandidate("wealth", date, dayFortune(90, 95))
	assert.Contains(t, high.Tags, "high purpose fit")
	assert.Contains(t, high.Tags, "peak momentum")
	assert.Contains(t, high.Tags, "low risk")
	assert.LessOrEqual(t, len(high.Tags), 3)

	low := buildCandidate("wealth", date, dayFortune(55, 55))
	assert.Equal(t, []string{"balanced choice"}, low.Tags)
}

func TestBuildSummary_Trend(t *testing.T) {
	scores := map[string]int{
		"2025-09-19": 55,
		"2025-09-20": 60,
		"2025-09-21": 80,
		"2025-09-22": 85,
	}
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return nil, errors.New("remote down")
		},
		DayFortuneFn: func(_ context.Context, req *models.DayFortuneRequest) (*models.DayFortune, error) {
			s := scores[req.Date]
			return dayFortune(s, s), nil
		},
	}
	e := newTestEngine(client)

	data, err := e.Recommend(context.Background(), wealthRequest(4))
	require.NoError(t, err)

	assert.Equal(t, "rising", data.Summary.Trend)
	assert.Equal(t, "2025-09-22", data.Summary.BestDate)
	// Worst entry is the last timeline day, not the lowest score.
	assert.Equal(t, "2025-09-22", data.Summary.WorstDate)
}

func TestRecommend_FallbackCountsInMetrics(t *testing.T) {
	client := &testutil.MockFortuneClient{
		RecommendFn: func(_ context.Context, _ *models.RecommendRequest) (*models.RecommendationData, error) {
			return nil, errors.New("remote down")
		},
		DayFortuneFn: func(_ context.Context, _ *models.DayFortuneRequest) (*models.DayFortune, error) {
			return dayFortune(70, 75), nil
		},
	}
	metrics := &testutil.MockMetrics{}
	e := NewEngine(engineConfig(), client, &testutil.MockLogger{}, metrics)
	e.now = func() time.Time {
		return time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	}

	_, err := e.Recommend(context.Background(), wealthRequest(3))
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.FallbackScans)
	assert.Equal(t, 1, metrics.ScanObservations)
}

func TestRiskFor_Bands(t *testing.T) {
	cases := []struct {
		score  int
		level  string
		weight int
	}{
		{95, "low", 1},
		{78, "low", 1},
		{77, "medium", 2},
		{60, "medium", 2},
		{59, "high", 4},
		{0, "high", 4},
	}
	for _, c := range cases {
		level, weight := riskFor(c.score)
		assert.Equal(t, c.level, level, "score %d", c.score)
		assert.Equal(t, c.weight, weight, "score %d", c.score)
	}
}

func TestMondayIndexed(t *testing.T) {
	assert.Equal(t, 0, mondayIndexed(time.Monday))
	assert.Equal(t, 5, mondayIndexed(time.Saturday))
	assert.Equal(t, 6, mondayIndexed(time.Sunday))
}
