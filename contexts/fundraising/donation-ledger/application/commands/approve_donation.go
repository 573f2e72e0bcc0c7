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

type ApproveDonationCommand struct {
	DonationID string
	AdminID    string
}

// ApproveDonationUseCase settles a pending donation. Approving twice is a
// no-op error, never a second counter increment. The fully-funded guard is
// deliberately not re-checked here: a pending donation that predates the
// campaign reaching its goal is still honored.
type ApproveDonationUseCase struct {
	Donations ports.DonationRepository
	Cache     ports.DashboardCache
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc ApproveDonationUseCase) Execute(ctx context.Context, cmd ApproveDonationCommand) (entities.Donation, error) {
	logger := application.ResolveLogger(uc.Logger)
	donationID := strings.TrimSpace(cmd.DonationID)
	if donationID == "" {
		return entities.Donation{}, domainerrors.ErrInvalidDonationInput
	}

	settled, err := uc.Donations.ApproveDonation(ctx, donationID, uc.Clock.Now().UTC())
	if err != nil {
		return entities.Donation{}, err
	}
	uc.Cache.Invalidate(ports.CacheKeyDonations)
	uc.Cache.Invalidate(ports.CacheKeyCampaigns)

	logger.Info("pending donation approved",
		"event", "donation_approved",
		"module", "fundraising/donation-ledger",
		"layer", "application",
		"donation_id", settled.DonationID,
		"campaign_id", settled.CampaignID,
		"admin_id", strings.TrimSpace(cmd.AdminID),
	)
	return settled, nil
}
