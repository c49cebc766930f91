//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"fortuned/internal"
	"fortuned/internal/analytics"
	"fortuned/internal/controllers"
	"fortuned/internal/history"
	"fortuned/internal/maintenance"
	"fortuned/internal/providers"
	"fortuned/internal/recommend"
	"fortuned/internal/remote"
	"fortuned/internal/storage"
	storageifaces "fortuned/internal/storage/interfaces"
	"fortuned/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewCacheProvider,

		storage.NewZstdCompressor,
		storage.NewHistoryKV,
		wire.Bind(new(storageifaces.KVInterface), new(*storage.FileKV)),
		history.NewStore,
		analytics.NewTrendAnalyzer,
		analytics.NewTopDaySelector,
		analytics.NewCalendarAggregator,
		remote.NewClient,
		recommend.NewEngine,
		maintenance.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
