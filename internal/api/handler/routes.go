package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-navigator/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/billing"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/creative"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/insighting"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/navigating"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/resolving"
	"github.com/vfg2006/meta-ads-navigator/pkg/middleware"
)

func Healthcheck(resolver resolving.Resolver) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(resolver),
		},
	}
}

func Clients(resolver resolving.Resolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Structure(service navigating.Navigator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/structure/:account",
			Method:      http.MethodGet,
			Handler:     GetStructure(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/:object_id",
			Method:      http.MethodGet,
			Handler:     GetAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Creatives(service creative.CreativeService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ads/:ad_id/creative",
			Method:      http.MethodGet,
			Handler:     GetAdCreative(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Balance(service billing.BalanceService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:account/balance",
			Method:      http.MethodGet,
			Handler:     GetAccountBalance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
