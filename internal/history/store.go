package history

import (
	"math"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"

	"fortuned/internal/models"
	"fortuned/internal/providers"
	"fortuned/internal/storage/interfaces"
	"fortuned/internal/structures"
)

type StoreInterface interface {
	Append(record *models.HistoryRecord)
	List() []models.HistoryRecord
	Clear()
	Stats() *models.HistoryStats
	Count() int
}

// Store is a capacity-bounded, date-keyed log of fortune snapshots over a
// durable KV medium. One record per date, newest first, at most maxRecords
// entries. Not safe for concurrent writers; last write wins.
type Store struct {
	kv         interfaces.KVInterface
	key        string
	maxRecords int
	logger     providers.Logger
}

func NewStore(conf *structures.Config, kv interfaces.KVInterface, logger providers.Logger) StoreInterface {
	return &Store{
		kv:         kv,
		key:        conf.History.StorageKey,
		maxRecords: conf.History.MaxRecords,
		logger:     logger,
	}
}

// Append inserts a snapshot, replacing any record with the same date and
// evicting the oldest entries past capacity. Storage failures are logged
// and swallowed; a lost snapshot is not worth failing the caller.
func (s *Store) Append(record *models.HistoryRecord) {
	if record == nil {
		return
	}
	if v := validate.Struct(record); !v.Validate() {
		s.logger.Warnf(providers.TypeApp, "Dropping malformed history record: %s", v.Errors.One())
		return
	}

	filtered := make([]models.HistoryRecord, 0, s.maxRecords)
	filtered = append(filtered, *record)
	for _, h := range s.List() {
		if h.Date == record.Date {
			continue
		}
		filtered = append(filtered, h)
	}
	if len(filtered) > s.maxRecords {
		filtered = filtered[:s.maxRecords]
	}

	data, err := json.Marshal(filtered)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to serialize history: %s", err)
		return
	}
	if err = s.kv.Set(s.key, data); err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to persist history: %s", err)
	}
}

// List returns all records sorted by capture time, newest first. Read or
// parse failures yield an empty list, never an error.
func (s *Store) List() []models.HistoryRecord {
	data, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to read history: %s", err)
		return []models.HistoryRecord{}
	}
	if !ok {
		return []models.HistoryRecord{}
	}

	var records []models.HistoryRecord
	if err = json.Unmarshal(data, &records); err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to parse history: %s", err)
		return []models.HistoryRecord{}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	return records
}

// Clear removes the whole log. Idempotent.
func (s *Store) Clear() {
	if err := s.kv.Delete(s.key); err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to clear history: %s", err)
	}
}

func (s *Store) Count() int {
	return len(s.List())
}

// Stats returns nil for an empty store. Max/min ties resolve to the record
// seen first in recency order, i.e. the more recent one.
func (s *Store) Stats() *models.HistoryStats {
	records := s.List()
	if len(records) == 0 {
		return nil
	}

	sum := 0
	maxRecord := records[0]
	minRecord := records[0]
	for _, h := range records {
		sum += h.Fortune.TotalScore
		if h.Fortune.TotalScore > maxRecord.Fortune.TotalScore {
			maxRecord = h
		}
		if h.Fortune.TotalScore < minRecord.Fortune.TotalScore {
			minRecord = h
		}
	}

	return &models.HistoryStats{
		Total:     len(records),
		AvgScore:  int(math.Round(float64(sum) / float64(len(records)))),
		MaxRecord: &maxRecord,
		MinRecord: &minRecord,
	}
}
