package campaignservice

import (
	"log/slog"

	httpadapter "caritas/contexts/fundraising/campaign-service/adapters/http"
	"caritas/contexts/fundraising/campaign-service/adapters/memory"
	"caritas/contexts/fundraising/campaign-service/application/commands"
	"caritas/contexts/fundraising/campaign-service/application/queries"
	"caritas/contexts/fundraising/campaign-service/domain/entities"
	"caritas/contexts/fundraising/campaign-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Campaigns ports.CampaignRepository
	Cache     ports.DashboardCache
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createCampaign := commands.CreateCampaignUseCase{
		Campaigns: deps.Campaigns,
		Cache:     deps.Cache,
		Clock:     deps.Clock,
		IDGen:     deps.IDGen,
		Logger:    deps.Logger,
	}
	updateText := commands.UpdateTextUseCase{
		Campaigns: deps.Campaigns,
		Cache:     deps.Cache,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	setHold := commands.SetHoldUseCase{
		Campaigns: deps.Campaigns,
		Cache:     deps.Cache,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	deleteCampaign := commands.DeleteCampaignUseCase{
		Campaigns: deps.Campaigns,
		Cache:     deps.Cache,
		Logger:    deps.Logger,
	}
	getCampaign := queries.GetCampaignUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}
	listCampaigns := queries.ListCampaignsUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateCampaign: createCampaign,
			UpdateText:     updateText,
			SetHold:        setHold,
			DeleteCampaign: deleteCampaign,
			GetCampaign:    getCampaign,
			ListCampaigns:  listCampaigns,
			Logger:         deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Campaign, cache ports.DashboardCache, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Campaigns: store,
		Cache:     cache,
		Clock:     store,
		IDGen:     store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
