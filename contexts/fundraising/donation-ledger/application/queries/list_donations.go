package queries

import (
	"context"
	"log/slog"
	"strings"

	"caritas/contexts/fundraising/donation-ledger/domain/entities"
	"caritas/contexts/fundraising/donation-ledger/ports"
)

type ListDonationsQuery struct {
	CampaignID string
	Status     string
}

type ListDonationsUseCase struct {
	Donations ports.DonationRepository
	Logger    *slog.Logger
}

func (uc ListDonationsUseCase) Execute(ctx context.Context, query ListDonationsQuery) ([]entities.Donation, error) {
	filter := ports.DonationFilter{
		CampaignID: strings.TrimSpace(query.CampaignID),
	}
	if status := entities.DonationStatus(strings.TrimSpace(query.Status)); status != "" && entities.IsSupportedDonationStatus(status) {
		filter.Status = status
	}
	return uc.Donations.ListDonations(ctx, filter)
}
