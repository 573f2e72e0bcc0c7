package queries

import (
	"context"
	"strings"

	"caritas/contexts/fundraising/review-queue/domain/entities"
	"caritas/contexts/fundraising/review-queue/ports"
)

type GetReviewQuery struct {
	ReviewID string
}

type GetReviewUseCase struct {
	Reviews ports.ReviewRepository
}

func (uc GetReviewUseCase) Execute(ctx context.Context, query GetReviewQuery) (entities.CampaignReview, error) {
	return uc.Reviews.GetReview(ctx, strings.TrimSpace(query.ReviewID))
}
