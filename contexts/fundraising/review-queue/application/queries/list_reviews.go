package queries

import (
	"context"
	"strings"

	"caritas/contexts/fundraising/review-queue/domain/entities"
	"caritas/contexts/fundraising/review-queue/ports"
)

type ListReviewsQuery struct {
	CreatorID   string
	PendingOnly bool
}

type ListReviewsUseCase struct {
	Reviews ports.ReviewRepository
}

func (uc ListReviewsUseCase) Execute(ctx context.Context, query ListReviewsQuery) ([]entities.CampaignReview, error) {
	return uc.Reviews.ListReviews(ctx, ports.ReviewFilter{
		CreatorID:   strings.TrimSpace(query.CreatorID),
		PendingOnly: query.PendingOnly,
	})
}
