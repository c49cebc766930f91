package testutil

import (
	"context"
	"sync"
	"time"

	"fortuned/internal/models"
	"fortuned/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// LogsByLevel returns the recorded entries with the given level.
func (m *MockLogger) LogsByLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []LogEntry{}
	for _, e := range m.Logs {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu               sync.Mutex
	Requests         int
	CacheHits        int
	CacheMisses      int
	RemoteFailures   map[string]int
	FallbackScans    int
	ScanObservations int
	HistoryRecords   int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncRemoteFailures(endpoint string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemoteFailures == nil {
		m.RemoteFailures = make(map[string]int)
	}
	m.RemoteFailures[endpoint]++
}

func (m *MockMetrics) IncFallbackScans() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FallbackScans++
}

func (m *MockMetrics) ObserveScanDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScanObservations++
}

func (m *MockMetrics) SetHistoryRecords(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HistoryRecords = count
}

func (m *MockMetrics) LastHistoryRecords() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.HistoryRecords
}

// MockKV implements interfaces.KVInterface in memory with injectable errors.
type MockKV struct {
	mu        sync.Mutex
	Data      map[string][]byte
	GetErr    error
	SetErr    error
	DeleteErr error
}

func NewMockKV() *MockKV {
	return &MockKV{Data: make(map[string][]byte)}
}

func (m *MockKV) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	val, ok := m.Data[key]
	return val, ok, nil
}

func (m *MockKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.Data[key] = stored
	return nil
}

func (m *MockKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Data, key)
	return nil
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu         sync.Mutex
	Data       map[string][]byte
	ClearCalls int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	m.Data = make(map[string][]byte)
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockFortuneClient implements remote.ClientInterface with injectable
// handlers and call counters.
type MockFortuneClient struct {
	mu sync.Mutex

	RecommendFn  func(ctx context.Context, req *models.RecommendRequest) (*models.RecommendationData, error)
	LifeMapFn    func(ctx context.Context, req *models.LifeMapRequest) (*models.LifeMapData, error)
	DayFortuneFn func(ctx context.Context, req *models.DayFortuneRequest) (*models.DayFortune, error)

	RecommendCalls  int
	LifeMapCalls    int
	DayFortuneCalls []string
}

func (m *MockFortuneClient) RecommendDates(ctx context.Context, req *models.RecommendRequest) (*models.RecommendationData, error) {
	m.mu.Lock()
	m.RecommendCalls++
	m.mu.Unlock()
	return m.RecommendFn(ctx, req)
}

func (m *MockFortuneClient) LifeMapTrends(ctx context.Context, req *models.LifeMapRequest) (*models.LifeMapData, error) {
	m.mu.Lock()
	m.LifeMapCalls++
	m.mu.Unlock()
	return m.LifeMapFn(ctx, req)
}

func (m *MockFortuneClient) DayFortune(ctx context.Context, req *models.DayFortuneRequest) (*models.DayFortune, error) {
	m.mu.Lock()
	m.DayFortuneCalls = append(m.DayFortuneCalls, req.Date)
	m.mu.Unlock()
	return m.DayFortuneFn(ctx, req)
}

// MockStore implements history.StoreInterface over a plain slice, newest
// first, so controller tests can skip the KV layer.
type MockStore struct {
	mu         sync.Mutex
	Records    []models.HistoryRecord
	ClearCalls int
	Appended   []*models.HistoryRecord
	StatsValue *models.HistoryStats
}

func (m *MockStore) Append(record *models.HistoryRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Appended = append(m.Appended, record)
	if record != nil {
		m.Records = append([]models.HistoryRecord{*record}, m.Records...)
	}
}

func (m *MockStore) List() []models.HistoryRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.HistoryRecord, len(m.Records))
	copy(out, m.Records)
	return out
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	m.Records = nil
}

func (m *MockStore) Stats() *models.HistoryStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.StatsValue
}

func (m *MockStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Records)
}
