package handler

import (
	"net/http"

	"github.com/vfg2006/linkedin-ads-center/internal/api/handler/router"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service AuthService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodGet,
			Handler: Login(service),
		},
		{
			Path:    "/v1/auth/callback",
			Method:  http.MethodGet,
			Handler: AuthCallback(service),
		},
		{
			Path:    "/v1/auth/status",
			Method:  http.MethodGet,
			Handler: AuthStatus(service),
		},
	}
}

func Sync(service Syncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync",
			Method:  http.MethodPost,
			Handler: RunSync(service),
		},
		{
			Path:    "/v1/sync/jobs/:id",
			Method:  http.MethodGet,
			Handler: GetSyncJob(service),
		},
	}
}

func Reports(service reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/status",
			Method:  http.MethodGet,
			Handler: StatusReport(service),
		},
		{
			Path:    "/v1/report/audit",
			Method:  http.MethodGet,
			Handler: CampaignAudit(service),
		},
		{
			Path:    "/v1/report/campaigns",
			Method:  http.MethodGet,
			Handler: CampaignPerformance(service),
		},
		{
			Path:    "/v1/report/creatives",
			Method:  http.MethodGet,
			Handler: CreativePerformance(service),
		},
		{
			Path:    "/v1/report/visual",
			Method:  http.MethodGet,
			Handler: VisualReport(service),
		},
		{
			Path:    "/v1/report/demographics",
			Method:  http.MethodGet,
			Handler: Demographics(service),
		},
	}
}
