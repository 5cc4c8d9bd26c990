package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/gestorpro/analytics-api/internal/api/handler/router"
	"github.com/gestorpro/analytics-api/internal/usecases/aggregating"
	"github.com/gestorpro/analytics-api/internal/usecases/forecasting"
	"github.com/gestorpro/analytics-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analytics(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/metrics",
			Method:      http.MethodGet,
			Handler:     GetMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/years",
			Method:      http.MethodGet,
			Handler:     GetAvailableYears(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/months",
			Method:      http.MethodGet,
			Handler:     GetAvailableMonths(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/weeks",
			Method:      http.MethodGet,
			Handler:     GetAvailableWeeks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Forecast(service forecasting.Orchestrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/forecast",
			Method:      http.MethodPost,
			Handler:     GenerateForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
