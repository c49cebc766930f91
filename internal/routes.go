package internal

import (
	"net/http"

	"fortuned/internal/controllers"
	"fortuned/internal/providers"
	"fortuned/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/history", http.HandlerFunc(apiController.AppendHistory))
	routers.Get("/history/list", http.HandlerFunc(apiController.ListHistory))
	routers.Get("/history/stats", http.HandlerFunc(apiController.HistoryStats))
	routers.Delete("/history/clear", http.HandlerFunc(apiController.ClearHistory))
	routers.Get("/trends", http.HandlerFunc(apiController.GetTrends))
	routers.Get("/trends/dimensions", http.HandlerFunc(apiController.GetDimensionTrends))
	routers.Get("/trends/analysis", http.HandlerFunc(apiController.GetTrendAnalysis))
	routers.Get("/topdays", http.HandlerFunc(apiController.GetTopDays))
	routers.Get("/calendar", http.HandlerFunc(apiController.GetCalendar))
	routers.Post("/recommend", http.HandlerFunc(apiController.Recommend))
	routers.Post("/lifemap", http.HandlerFunc(apiController.LifeMap))
	return routers
}
