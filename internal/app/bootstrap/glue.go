package bootstrap

import (
	"context"

	campaignqueries "caritas/contexts/fundraising/campaign-service/application/queries"
	donationqueries "caritas/contexts/fundraising/donation-ledger/application/queries"
	reviewqueries "caritas/contexts/fundraising/review-queue/application/queries"
	reviewports "caritas/contexts/fundraising/review-queue/ports"
	verificationapplication "caritas/contexts/identity-access/verification-service/application"
	dashboardports "caritas/contexts/internal-ops/admin-dashboard-service/ports"
)

// verificationGate adapts the identity-access service to the review queue's
// reader port, keeping the queue free of a direct context dependency.
type verificationGate struct {
	service verificationapplication.Service
}

func (g verificationGate) VerificationState(ctx context.Context, creatorID string) (reviewports.VerificationState, error) {
	state, err := g.service.State(ctx, creatorID)
	if err != nil {
		return reviewports.VerificationState{}, err
	}
	return reviewports.VerificationState{
		PhoneVerified:    state.PhoneVerified,
		IdentityVerified: state.IdentityVerified,
		AddressVerified:  state.AddressVerified,
	}, nil
}

func (g verificationGate) EnsureMaySubmit(ctx context.Context, creatorID string) error {
	return g.service.EnsureMaySubmit(ctx, creatorID)
}

// Dashboard readers adapt each context's query side to the dashboard's
// summary ports. The dashboard never reaches into another context's tables.

type campaignSummaryReader struct {
	list campaignqueries.ListCampaignsUseCase
}

func (r campaignSummaryReader) ListCampaignSummaries(ctx context.Context) ([]dashboardports.CampaignSummary, error) {
	items, err := r.list.Execute(ctx, campaignqueries.ListCampaignsQuery{})
	if err != nil {
		return nil, err
	}
	result := make([]dashboardports.CampaignSummary, 0, len(items))
	for _, item := range items {
		result = append(result, dashboardports.CampaignSummary{
			CampaignID: item.CampaignID,
			CreatorID:  item.CreatorID,
			Title:      item.Title,
			Category:   item.Category,
			Goal:       item.Goal,
			Raised:     item.Raised,
			Backers:    item.Backers,
			Verified:   item.Verified,
			Status:     string(item.Status),
			CreatedAt:  item.CreatedAt,
		})
	}
	return result, nil
}

type reviewSummaryReader struct {
	list reviewqueries.ListReviewsUseCase
}

func (r reviewSummaryReader) ListPendingReviewSummaries(ctx context.Context) ([]dashboardports.ReviewSummary, error) {
	items, err := r.list.Execute(ctx, reviewqueries.ListReviewsQuery{PendingOnly: true})
	if err != nil {
		return nil, err
	}
	result := make([]dashboardports.ReviewSummary, 0, len(items))
	for _, item := range items {
		result = append(result, dashboardports.ReviewSummary{
			ReviewID:    item.ReviewID,
			CreatorID:   item.CreatorID,
			Title:       item.Title,
			Category:    item.Category,
			Goal:        item.Goal,
			Status:      string(item.Status),
			SubmittedAt: item.SubmittedAt,
		})
	}
	return result, nil
}

type donationSummaryReader struct {
	list donationqueries.ListDonationsUseCase
}

func (r donationSummaryReader) ListDonationSummaries(ctx context.Context) ([]dashboardports.DonationSummary, error) {
	items, err := r.list.Execute(ctx, donationqueries.ListDonationsQuery{})
	if err != nil {
		return nil, err
	}
	result := make([]dashboardports.DonationSummary, 0, len(items))
	for _, item := range items {
		donorName := item.DonorName
		if item.Anonymous() {
			donorName = "Anonymous"
		}
		result = append(result, dashboardports.DonationSummary{
			DonationID:    item.DonationID,
			ReferenceCode: item.ReferenceCode,
			CampaignID:    item.CampaignID,
			DonorName:     donorName,
			Amount:        item.Amount,
			Method:        string(item.Method),
			Status:        string(item.Status),
			CreatedAt:     item.CreatedAt,
		})
	}
	return result, nil
}

type profileSummaryReader struct {
	service verificationapplication.Service
}

func (r profileSummaryReader) ListProfileSummaries(ctx context.Context) ([]dashboardports.ProfileSummary, error) {
	items, err := r.service.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dashboardports.ProfileSummary, 0, len(items))
	for _, item := range items {
		result = append(result, dashboardports.ProfileSummary{
			CreatorID:        item.CreatorID,
			DisplayName:      item.DisplayName,
			Email:            item.Email,
			PhoneVerified:    item.PhoneVerified,
			IdentityVerified: item.IdentityVerified,
			AddressVerified:  item.AddressVerified,
			Disabled:         item.Disabled,
			OnHold:           item.OnHold,
		})
	}
	return result, nil
}
