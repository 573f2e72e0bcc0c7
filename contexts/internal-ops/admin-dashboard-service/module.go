package admindashboard

import (
	"log/slog"
	"time"

	httpadapter "caritas/contexts/internal-ops/admin-dashboard-service/adapters/http"
	"caritas/contexts/internal-ops/admin-dashboard-service/adapters/memorycache"
	"caritas/contexts/internal-ops/admin-dashboard-service/application"
	"caritas/contexts/internal-ops/admin-dashboard-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Cache   ports.Cache
}

type Dependencies struct {
	Campaigns ports.CampaignReader
	Reviews   ports.ReviewReader
	Donations ports.DonationReader
	Profiles  ports.ProfileReader

	// Cache is shared with the mutating contexts so their writes evict what
	// reads fill. When nil a fresh TTL cache is created with CacheTTL.
	Cache    ports.Cache
	CacheTTL time.Duration
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	cache := deps.Cache
	if cache == nil {
		cache = memorycache.NewTTLCache(deps.CacheTTL)
	}
	service := application.Service{
		Campaigns: deps.Campaigns,
		Reviews:   deps.Reviews,
		Donations: deps.Donations,
		Profiles:  deps.Profiles,
		Cache:     cache,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Dashboard: service,
			Logger:    deps.Logger,
		},
		Service: service,
		Cache:   cache,
	}
}
