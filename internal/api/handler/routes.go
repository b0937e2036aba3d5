package handler

import (
	"net/http"

	"github.com/vfg2006/brand-spend-api/internal/api/handler/router"
	"github.com/vfg2006/brand-spend-api/internal/config"
	"github.com/vfg2006/brand-spend-api/internal/usecases/reporting"
)

func Healthcheck(probe StoreStatusReader) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: AliveHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(probe),
		},
	}
}

func Reports(reporter reporting.Reporter, query config.Query) []router.Route {
	return []router.Route{
		{
			Path:    "/brands/",
			Method:  http.MethodGet,
			Handler: GetBrands(reporter, query),
		},
		{
			Path:    "/daily-spend/",
			Method:  http.MethodGet,
			Handler: GetDailySpend(reporter, query),
		},
		{
			Path:    "/summary/",
			Method:  http.MethodGet,
			Handler: GetSummary(reporter),
		},
	}
}
