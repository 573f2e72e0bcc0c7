package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"caritas/contexts/fundraising/review-queue/application/commands"
	"caritas/contexts/fundraising/review-queue/application/queries"
	"caritas/contexts/fundraising/review-queue/domain/entities"
	domainerrors "caritas/contexts/fundraising/review-queue/domain/errors"
	httptransport "caritas/contexts/fundraising/review-queue/transport/http"
)

type Handler struct {
	SubmitReview  commands.SubmitReviewUseCase
	ApproveReview commands.ApproveReviewUseCase
	RejectReview  commands.RejectReviewUseCase
	GetReview     queries.GetReviewUseCase
	ListReviews   queries.ListReviewsUseCase
	Logger        *slog.Logger
}

func (h Handler) SubmitReviewHandler(
	ctx context.Context,
	req httptransport.SubmitReviewRequest,
) (httptransport.SubmitReviewResponse, error) {
	goal, err := decimal.NewFromString(req.Goal)
	if err != nil {
		return httptransport.SubmitReviewResponse{}, domainerrors.ErrInvalidReviewInput
	}
	review, err := h.SubmitReview.Execute(ctx, commands.SubmitReviewCommand{
		CreatorID:   req.CreatorID,
		Title:       req.Title,
		Description: req.Description,
		FullText:    req.FullText,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Goal:        goal,
	})
	if err != nil {
		return httptransport.SubmitReviewResponse{}, err
	}
	return httptransport.SubmitReviewResponse{Review: mapReview(review)}, nil
}

func (h Handler) ApproveReviewHandler(
	ctx context.Context,
	adminID string,
	reviewID string,
) (httptransport.ApproveReviewResponse, error) {
	campaignID, err := h.ApproveReview.Execute(ctx, commands.ApproveReviewCommand{
		AdminID:  adminID,
		ReviewID: reviewID,
	})
	if err != nil {
		return httptransport.ApproveReviewResponse{}, err
	}
	return httptransport.ApproveReviewResponse{CampaignID: campaignID}, nil
}

func (h Handler) RejectReviewHandler(ctx context.Context, adminID string, reviewID string) error {
	return h.RejectReview.Execute(ctx, commands.RejectReviewCommand{
		AdminID:  adminID,
		ReviewID: reviewID,
	})
}

func (h Handler) GetReviewHandler(ctx context.Context, reviewID string) (httptransport.GetReviewResponse, error) {
	item, err := h.GetReview.Execute(ctx, queries.GetReviewQuery{ReviewID: reviewID})
	if err != nil {
		return httptransport.GetReviewResponse{}, err
	}
	return httptransport.GetReviewResponse{Review: mapReview(item)}, nil
}

func (h Handler) ListReviewsHandler(
	ctx context.Context,
	creatorID string,
	pendingOnly bool,
) (httptransport.ListReviewsResponse, error) {
	items, err := h.ListReviews.Execute(ctx, queries.ListReviewsQuery{
		CreatorID:   creatorID,
		PendingOnly: pendingOnly,
	})
	if err != nil {
		return httptransport.ListReviewsResponse{}, err
	}
	result := make([]httptransport.ReviewDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapReview(item))
	}
	return httptransport.ListReviewsResponse{Items: result}, nil
}

func mapReview(item entities.CampaignReview) httptransport.ReviewDTO {
	return httptransport.ReviewDTO{
		ReviewID:    item.ReviewID,
		CreatorID:   item.CreatorID,
		Title:       item.Title,
		Description: item.Description,
		FullText:    item.FullText,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		Goal:        item.Goal.StringFixed(2),
		Status:      string(item.Status),
		SubmittedAt: item.SubmittedAt.UTC().Format(time.RFC3339),
	}
}
