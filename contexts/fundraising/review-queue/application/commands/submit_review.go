package commands

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	application "caritas/contexts/fundraising/review-queue/application"
	"caritas/contexts/fundraising/review-queue/domain/entities"
	domainerrors "caritas/contexts/fundraising/review-queue/domain/errors"
	"caritas/contexts/fundraising/review-queue/ports"
)

type SubmitReviewCommand struct {
	CreatorID   string
	Title       string
	Description string
	FullText    string
	Category    string
	ImageURL    string
	Goal        decimal.Decimal
}

// SubmitReviewUseCase queues a campaign submission for admin review. The
// creator only needs an eligible profile here; the verification gate runs at
// approval time, not submission time.
type SubmitReviewUseCase struct {
	Reviews      ports.ReviewRepository
	Verification ports.VerificationReader
	Cache        ports.DashboardCache
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Logger       *slog.Logger
}

func (uc SubmitReviewUseCase) Execute(ctx context.Context, cmd SubmitReviewCommand) (entities.CampaignReview, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	if err := uc.Verification.EnsureMaySubmit(ctx, strings.TrimSpace(cmd.CreatorID)); err != nil {
		return entities.CampaignReview{}, err
	}

	reviewID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.CampaignReview{}, err
	}

	review := entities.CampaignReview{
		ReviewID:    reviewID,
		CreatorID:   strings.TrimSpace(cmd.CreatorID),
		Title:       strings.TrimSpace(cmd.Title),
		Description: strings.TrimSpace(cmd.Description),
		FullText:    strings.TrimSpace(cmd.FullText),
		Category:    strings.TrimSpace(cmd.Category),
		ImageURL:    strings.TrimSpace(cmd.ImageURL),
		Goal:        cmd.Goal,
		Status:      entities.ReviewStatusPending,
		SubmittedAt: now,
	}
	if !review.ValidateBasics() {
		return entities.CampaignReview{}, domainerrors.ErrInvalidReviewInput
	}

	if err := uc.Reviews.CreateReview(ctx, review); err != nil {
		return entities.CampaignReview{}, err
	}
	uc.Cache.Invalidate(ports.CacheKeyReviews)

	logger.Info("campaign review submitted",
		"event", "review_submitted",
		"module", "fundraising/review-queue",
		"layer", "application",
		"review_id", review.ReviewID,
		"creator_id", review.CreatorID,
	)
	return review, nil
}
