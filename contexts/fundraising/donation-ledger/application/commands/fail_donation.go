package commands

import (
	"context"
	"log/slog"
	"strings"

	application "caritas/contexts/fundraising/donation-ledger/application"
	"caritas/contexts/fundraising/donation-ledger/domain/entities"
	domainerrors "caritas/contexts/fundraising/donation-ledger/domain/errors"
	"caritas/contexts/fundraising/donation-ledger/ports"
)

type FailDonationCommand struct {
	DonationID string
	AdminID    string
}

// FailDonationUseCase moves a pending donation to its failed terminal state.
// Campaign counters are never touched on this path.
type FailDonationUseCase struct {
	Donations ports.DonationRepository
	Cache     ports.DashboardCache
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc FailDonationUseCase) Execute(ctx context.Context, cmd FailDonationCommand) (entities.Donation, error) {
	logger := application.ResolveLogger(uc.Logger)
	donationID := strings.TrimSpace(cmd.DonationID)
	if donationID == "" {
		return entities.Donation{}, domainerrors.ErrInvalidDonationInput
	}

	failed, err := uc.Donations.FailDonation(ctx, donationID, uc.Clock.Now().UTC())
	if err != nil {
		return entities.Donation{}, err
	}
	uc.Cache.Invalidate(ports.CacheKeyDonations)

	logger.Info("pending donation failed",
		"event", "donation_failed",
		"module", "fundraising/donation-ledger",
		"layer", "application",
		"donation_id", failed.DonationID,
		"campaign_id", failed.CampaignID,
		"admin_id", strings.TrimSpace(cmd.AdminID),
	)
	return failed, nil
}
