package commands

import (
	"context"
	"log/slog"
	"strings"

	application "caritas/contexts/fundraising/review-queue/application"
	domainerrors "caritas/contexts/fundraising/review-queue/domain/errors"
	"caritas/contexts/fundraising/review-queue/ports"
)

type RejectReviewCommand struct {
	AdminID  string
	ReviewID string
}

// RejectReviewUseCase turns a pending submission down. The row stays for
// audit but leaves the pending queue; no campaign is ever created.
type RejectReviewUseCase struct {
	Reviews ports.ReviewRepository
	Cache   ports.DashboardCache
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (uc RejectReviewUseCase) Execute(ctx context.Context, cmd RejectReviewCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	review, err := uc.Reviews.GetReview(ctx, strings.TrimSpace(cmd.ReviewID))
	if err != nil {
		return err
	}
	if !review.Pending() {
		return domainerrors.ErrReviewNotPending
	}

	if err := uc.Reviews.RejectReview(ctx, review.ReviewID, now); err != nil {
		return err
	}
	uc.Cache.Invalidate(ports.CacheKeyReviews)

	logger.Info("campaign review rejected",
		"event", "review_rejected",
		"module", "fundraising/review-queue",
		"layer", "application",
		"review_id", review.ReviewID,
		"creator_id", review.CreatorID,
		"admin_id", strings.TrimSpace(cmd.AdminID),
	)
	return nil
}
