package reviewqueue

import (
	"log/slog"

	httpadapter "caritas/contexts/fundraising/review-queue/adapters/http"
	"caritas/contexts/fundraising/review-queue/adapters/memory"
	"caritas/contexts/fundraising/review-queue/application/commands"
	"caritas/contexts/fundraising/review-queue/application/queries"
	"caritas/contexts/fundraising/review-queue/domain/entities"
	"caritas/contexts/fundraising/review-queue/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Reviews      ports.ReviewRepository
	Verification ports.VerificationReader
	Cache        ports.DashboardCache
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	submitReview := commands.SubmitReviewUseCase{
		Reviews:      deps.Reviews,
		Verification: deps.Verification,
		Cache:        deps.Cache,
		Clock:        deps.Clock,
		IDGen:        deps.IDGen,
		Logger:       deps.Logger,
	}
	approveReview := commands.ApproveReviewUseCase{
		Reviews:      deps.Reviews,
		Verification: deps.Verification,
		Cache:        deps.Cache,
		Clock:        deps.Clock,
		IDGen:        deps.IDGen,
		Logger:       deps.Logger,
	}
	rejectReview := commands.RejectReviewUseCase{
		Reviews: deps.Reviews,
		Cache:   deps.Cache,
		Clock:   deps.Clock,
		Logger:  deps.Logger,
	}
	getReview := queries.GetReviewUseCase{Reviews: deps.Reviews}
	listReviews := queries.ListReviewsUseCase{Reviews: deps.Reviews}

	return Module{
		Handler: httpadapter.Handler{
			SubmitReview:  submitReview,
			ApproveReview: approveReview,
			RejectReview:  rejectReview,
			GetReview:     getReview,
			ListReviews:   listReviews,
			Logger:        deps.Logger,
		},
	}
}

func NewInMemoryModule(
	seed []entities.CampaignReview,
	verification ports.VerificationReader,
	cache ports.DashboardCache,
	logger *slog.Logger,
) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Reviews:      store,
		Verification: verification,
		Cache:        cache,
		Clock:        store,
		IDGen:        store,
		Logger:       logger,
	})
	module.Store = store
	return module
}
