package maintenance

import (
	"sync"

	"github.com/roylee0704/gron"

	"fortuned/internal/history"
	"fortuned/internal/maintenance/interfaces"
	"fortuned/internal/providers"
	"fortuned/internal/structures"
)

// Scheduler runs the periodic housekeeping: it refreshes the history
// record gauge so dashboards track the log size without a request
// hitting the store.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	store   history.StoreInterface
	metrics providers.MetricsProviderInterface
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Maintenance.Interval

	s.cron.AddFunc(gron.Every(interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		count := s.store.Count()
		s.metrics.SetHistoryRecords(count)
		s.logger.Debugf(providers.TypeApp, "History gauge refreshed: %d records", count)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func NewScheduler(config *structures.Config, logger providers.Logger, store history.StoreInterface, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		store:   store,
		metrics: metrics,
	}
}
