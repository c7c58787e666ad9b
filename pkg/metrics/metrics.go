package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	SourceCache     = "cache"
	SourceWarehouse = "warehouse"
	SourceFallback  = "fallback"

	OriginLive     = "live"
	OriginFallback = "fallback"
)

var (
	// DirectoryResponses - ответы справочника филиалов по источнику данных.
	DirectoryResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "branch_directory_responses_total",
		Help: "Branch directory responses by data source.",
	}, []string{"source"})

	// WarehouseQueryDuration - длительность запроса к хранилищу.
	WarehouseQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "branch_warehouse_query_duration_seconds",
		Help:    "Branch warehouse query duration.",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider", "result"})

	// SelectLoads - загрузки страницы выбора филиала: живые данные или запасной список.
	SelectLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "branch_select_loads_total",
		Help: "Branch selection page loads by data origin.",
	}, []string{"origin"})
)

// Register вешает /metrics на echo.
func Register(e *echo.Echo, path string) {
	if path == "" {
		path = "/metrics"
	}
	e.GET(path, echo.WrapHandler(promhttp.Handler()))
}
