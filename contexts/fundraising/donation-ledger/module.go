package donationledger

import (
	"log/slog"

	httpadapter "caritas/contexts/fundraising/donation-ledger/adapters/http"
	"caritas/contexts/fundraising/donation-ledger/adapters/memory"
	"caritas/contexts/fundraising/donation-ledger/application/commands"
	"caritas/contexts/fundraising/donation-ledger/application/queries"
	"caritas/contexts/fundraising/donation-ledger/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Donations ports.DonationRepository
	RefCodes  ports.ReferenceGenerator
	Cache     ports.DashboardCache
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	recordDonation := commands.RecordDonationUseCase{
		Donations: deps.Donations,
		RefCodes:  deps.RefCodes,
		Cache:     deps.Cache,
		Clock:     deps.Clock,
		IDGen:     deps.IDGen,
		Logger:    deps.Logger,
	}
	approveDonation := commands.ApproveDonationUseCase{
		Donations: deps.Donations,
		Cache:     deps.Cache,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	failDonation := commands.FailDonationUseCase{
		Donations: deps.Donations,
		Cache:     deps.Cache,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	getDonation := queries.GetDonationUseCase{
		Donations: deps.Donations,
		Logger:    deps.Logger,
	}
	listDonations := queries.ListDonationsUseCase{
		Donations: deps.Donations,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			RecordDonation:  recordDonation,
			ApproveDonation: approveDonation,
			FailDonation:    failDonation,
			GetDonation:     getDonation,
			ListDonations:   listDonations,
			Logger:          deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []memory.CampaignFinance, cache ports.DashboardCache, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Donations: store,
		RefCodes:  store,
		Cache:     cache,
		Clock:     store,
		IDGen:     store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
