package verificationservice

import (
	"log/slog"

	httpadapter "caritas/contexts/identity-access/verification-service/adapters/http"
	"caritas/contexts/identity-access/verification-service/adapters/memory"
	"caritas/contexts/identity-access/verification-service/application"
	"caritas/contexts/identity-access/verification-service/domain/entities"
	"caritas/contexts/identity-access/verification-service/ports"
)

type Module struct {
	Service application.Service
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Profiles ports.ProfileRepository
	Cache    ports.DashboardCache
	Clock    ports.Clock
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Profiles: deps.Profiles,
		Cache:    deps.Cache,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.CreatorProfile, cache ports.DashboardCache, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Profiles: store,
		Cache:    cache,
		Clock:    store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
