package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"caritas/contexts/internal-ops/admin-dashboard-service/application"
	"caritas/contexts/internal-ops/admin-dashboard-service/ports"
	httptransport "caritas/contexts/internal-ops/admin-dashboard-service/transport/http"
)

type Handler struct {
	Dashboard application.Service
	Logger    *slog.Logger
}

func (h Handler) ListCampaignsHandler(ctx context.Context) (httptransport.ListCampaignSummariesResponse, error) {
	items, err := h.Dashboard.ListCampaigns(ctx)
	if err != nil {
		return httptransport.ListCampaignSummariesResponse{}, err
	}
	result := make([]httptransport.CampaignSummaryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapCampaignSummary(item))
	}
	return httptransport.ListCampaignSummariesResponse{Items: result}, nil
}

func (h Handler) ListPendingReviewsHandler(ctx context.Context) (httptransport.ListReviewSummariesResponse, error) {
	items, err := h.Dashboard.ListPendingReviews(ctx)
	if err != nil {
		return httptransport.ListReviewSummariesResponse{}, err
	}
	result := make([]httptransport.ReviewSummaryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapReviewSummary(item))
	}
	return httptransport.ListReviewSummariesResponse{Items: result}, nil
}

func (h Handler) ListDonationsHandler(ctx context.Context) (httptransport.ListDonationSummariesResponse, error) {
	items, err := h.Dashboard.ListDonations(ctx)
	if err != nil {
		return httptransport.ListDonationSummariesResponse{}, err
	}
	result := make([]httptransport.DonationSummaryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapDonationSummary(item))
	}
	return httptransport.ListDonationSummariesResponse{Items: result}, nil
}

func (h Handler) ListProfilesHandler(ctx context.Context) (httptransport.ListProfileSummariesResponse, error) {
	items, err := h.Dashboard.ListProfiles(ctx)
	if err != nil {
		return httptransport.ListProfileSummariesResponse{}, err
	}
	result := make([]httptransport.ProfileSummaryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapProfileSummary(item))
	}
	return httptransport.ListProfileSummariesResponse{Items: result}, nil
}

func mapCampaignSummary(item ports.CampaignSummary) httptransport.CampaignSummaryDTO {
	return httptransport.CampaignSummaryDTO{
		CampaignID: item.CampaignID,
		CreatorID:  item.CreatorID,
		Title:      item.Title,
		Category:   item.Category,
		Goal:       item.Goal.StringFixed(2),
		Raised:     item.Raised.StringFixed(2),
		Backers:    item.Backers,
		Verified:   item.Verified,
		Status:     item.Status,
		CreatedAt:  item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapReviewSummary(item ports.ReviewSummary) httptransport.ReviewSummaryDTO {
	return httptransport.ReviewSummaryDTO{
		ReviewID:    item.ReviewID,
		CreatorID:   item.CreatorID,
		Title:       item.Title,
		Category:    item.Category,
		Goal:        item.Goal.StringFixed(2),
		Status:      item.Status,
		SubmittedAt: item.SubmittedAt.UTC().Format(time.RFC3339),
	}
}

func mapDonationSummary(item ports.DonationSummary) httptransport.DonationSummaryDTO {
	return httptransport.DonationSummaryDTO{
		DonationID:    item.DonationID,
		ReferenceCode: item.ReferenceCode,
		CampaignID:    item.CampaignID,
		DonorName:     item.DonorName,
		Amount:        item.Amount.StringFixed(2),
		Method:        item.Method,
		Status:        item.Status,
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapProfileSummary(item ports.ProfileSummary) httptransport.ProfileSummaryDTO {
	return httptransport.ProfileSummaryDTO{
		CreatorID:        item.CreatorID,
		DisplayName:      item.DisplayName,
		Email:            item.Email,
		PhoneVerified:    item.PhoneVerified,
		IdentityVerified: item.IdentityVerified,
		AddressVerified:  item.AddressVerified,
		Disabled:         item.Disabled,
		OnHold:           item.OnHold,
	}
}
