package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
	"github.com/spf13/cast"

	"fortuned/internal/analytics"
	"fortuned/internal/history"
	"fortuned/internal/models"
	"fortuned/internal/providers"
	"fortuned/internal/recommend"
	"fortuned/internal/remote"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const (
	defaultTrendDays   = 7
	defaultTopDayLimit = 3
)

type ApiController struct {
	logger   providers.Logger
	store    history.StoreInterface
	trends   *analytics.TrendAnalyzer
	topDays  *analytics.TopDaySelector
	calendar *analytics.CalendarAggregator
	engine   *recommend.Engine
	remote   remote.ClientInterface
	cache    providers.CacheProviderInterface
}

func NewApiController(
	logger providers.Logger,
	store history.StoreInterface,
	trends *analytics.TrendAnalyzer,
	topDays *analytics.TopDaySelector,
	calendar *analytics.CalendarAggregator,
	engine *recommend.Engine,
	remoteClient remote.ClientInterface,
	cache providers.CacheProviderInterface,
) *ApiController {
	return &ApiController{
		logger:   logger,
		store:    store,
		trends:   trends,
		topDays:  topDays,
		calendar: calendar,
		engine:   engine,
		remote:   remoteClient,
		cache:    cache,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func intQuery(r *http.Request, name string, def int) int {
	if v := cast.ToInt(r.URL.Query().Get(name)); v > 0 {
		return v
	}
	return def
}

// --- history ---

func (ac *ApiController) AppendHistory(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var record models.HistoryRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if v := validate.Struct(&record); !v.Validate() {
		http.Error(w, v.Errors.One(), http.StatusBadRequest)
		return
	}
	ac.store.Append(&record)
	// Cached list/stats/trend views are derived from the store, drop them
	ac.cache.Clear()
	w.WriteHeader(http.StatusCreated)
}

func (ac *ApiController) ListHistory(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "history:list", func() (any, error) {
		return ac.store.List(), nil
	})
}

func (ac *ApiController) HistoryStats(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "history:stats", func() (any, error) {
		return ac.store.Stats(), nil
	})
}

func (ac *ApiController) ClearHistory(w http.ResponseWriter, r *http.Request) {
	ac.store.Clear()
	ac.cache.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// --- trends ---

func (ac *ApiController) GetTrends(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", defaultTrendDays)
	ac.serveFromCacheOrCompute(w, fmt.Sprintf("trends:%d", days), func() (any, error) {
		return ac.trends.RecentTrends(days), nil
	})
}

func (ac *ApiController) GetDimensionTrends(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", defaultTrendDays)
	ac.serveFromCacheOrCompute(w, fmt.Sprintf("trends:dims:%d", days), func() (any, error) {
		return ac.trends.DimensionTrends(days), nil
	})
}

func (ac *ApiController) GetTrendAnalysis(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", defaultTrendDays)
	ac.serveFromCacheOrCompute(w, fmt.Sprintf("trends:analysis:%d", days), func() (any, error) {
		// nil marshals to null: the insufficient-data signal, not an error
		return ac.trends.Analyze(days), nil
	})
}

func (ac *ApiController) GetTopDays(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", defaultTopDayLimit)
	ac.serveFromCacheOrCompute(w, fmt.Sprintf("topdays:%d", limit), func() (any, error) {
		return ac.topDays.TopDays(limit), nil
	})
}

// --- calendar ---

func (ac *ApiController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	viewDate, err := time.Parse("2006-01", month)
	if err != nil {
		viewDate = time.Now()
		month = viewDate.Format("2006-01")
	}

	ac.serveFromCacheOrCompute(w, "calendar:"+month, func() (any, error) {
		scores := make(map[string]int)
		for _, rec := range ac.store.List() {
			scores[rec.Date] = rec.Fortune.TotalScore
		}
		lookup := func(dateKey string) (int, bool) {
			score, ok := scores[dateKey]
			return score, ok
		}

		cells := ac.calendar.BuildMonth(viewDate, lookup)
		return models.MonthView{
			Month: month,
			Cells: cells,
			Stats: ac.calendar.Stats(cells),
		}, nil
	})
}

// --- recommendations ---

func (ac *ApiController) Recommend(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var req models.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if v := validate.Struct(&req.ProfileParams); !v.Validate() {
		writeJSON(w, http.StatusBadRequest, models.RecommendEnvelope{Success: false, Error: v.Errors.One()})
		return
	}

	data, err := ac.engine.Recommend(r.Context(), &req)
	if err != nil {
		ac.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "Date recommendation failed: %s", err)
		writeJSON(w, http.StatusBadGateway, models.RecommendEnvelope{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, models.RecommendEnvelope{Success: true, Data: data})
}

func (ac *ApiController) LifeMap(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var req models.LifeMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if v := validate.Struct(&req.ProfileParams); !v.Validate() {
		writeJSON(w, http.StatusBadRequest, models.LifeMapEnvelope{Success: false, Error: v.Errors.One()})
		return
	}

	// No local fallback exists for the life map; remote failures surface
	// directly.
	data, err := ac.remote.LifeMapTrends(r.Context(), &req)
	if err != nil {
		ac.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "Life map request failed: %s", err)
		writeJSON(w, http.StatusBadGateway, models.LifeMapEnvelope{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, models.LifeMapEnvelope{Success: true, Data: data})
}
