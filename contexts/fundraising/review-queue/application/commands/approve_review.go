package commands

import (
	"context"
	"log/slog"
	"strings"

	application "caritas/contexts/fundraising/review-queue/application"
	"caritas/contexts/fundraising/review-queue/domain/entities"
	domainerrors "caritas/contexts/fundraising/review-queue/domain/errors"
	"caritas/contexts/fundraising/review-queue/ports"
)

type ApproveReviewCommand struct {
	AdminID  string
	ReviewID string
}

// ApproveReviewUseCase publishes a pending submission. The creator's
// verification gate runs first; any failing check blocks approval and the
// submission stays pending. Promotion itself is a single repository
// transaction, so the campaign, the notification row, and the review
// deletion land together or not at all.
type ApproveReviewUseCase struct {
	Reviews      ports.ReviewRepository
	Verification ports.VerificationReader
	Cache        ports.DashboardCache
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Logger       *slog.Logger
}

func (uc ApproveReviewUseCase) Execute(ctx context.Context, cmd ApproveReviewCommand) (string, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	review, err := uc.Reviews.GetReview(ctx, strings.TrimSpace(cmd.ReviewID))
	if err != nil {
		return "", err
	}
	if !review.Pending() {
		return "", domainerrors.ErrReviewNotPending
	}

	state, err := uc.Verification.VerificationState(ctx, review.CreatorID)
	if err != nil {
		return "", err
	}
	if missing := state.MissingChecks(); len(missing) > 0 {
		logger.Warn("review approval blocked by verification gate",
			"event", "review_approval_blocked",
			"module", "fundraising/review-queue",
			"layer", "application",
			"review_id", review.ReviewID,
			"creator_id", review.CreatorID,
			"missing_checks", strings.Join(missing, ","),
		)
		return "", &domainerrors.VerificationIncompleteError{Missing: missing}
	}

	campaignID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return "", err
	}

	imageURL := review.ImageURL
	if imageURL == "" {
		imageURL = entities.PlaceholderImageURL
	}
	campaign := ports.PromotedCampaign{
		CampaignID:  campaignID,
		CreatorID:   review.CreatorID,
		Title:       review.Title,
		Description: review.Description,
		FullText:    review.FullText,
		Category:    review.Category,
		ImageURL:    imageURL,
		Goal:        review.Goal,
		CreatedAt:   now,
	}
	if err := uc.Reviews.PromoteReview(ctx, review.ReviewID, campaign); err != nil {
		return "", err
	}
	uc.Cache.Invalidate(ports.CacheKeyReviews)
	uc.Cache.Invalidate(ports.CacheKeyCampaigns)

	logger.Info("campaign review approved",
		"event", "review_approved",
		"module", "fundraising/review-queue",
		"layer", "application",
		"review_id", review.ReviewID,
		"campaign_id", campaignID,
		"creator_id", review.CreatorID,
		"admin_id", strings.TrimSpace(cmd.AdminID),
	)
	return campaignID, nil
}
