package queries

import (
	"context"
	"log/slog"
	"strings"

	"caritas/contexts/fundraising/donation-ledger/domain/entities"
	domainerrors "caritas/contexts/fundraising/donation-ledger/domain/errors"
	"caritas/contexts/fundraising/donation-ledger/ports"
)

type GetDonationUseCase struct {
	Donations ports.DonationRepository
	Logger    *slog.Logger
}

func (uc GetDonationUseCase) Execute(ctx context.Context, donationID string) (entities.Donation, error) {
	if strings.TrimSpace(donationID) == "" {
		return entities.Donation{}, domainerrors.ErrInvalidDonationInput
	}
	return uc.Donations.GetDonation(ctx, donationID)
}

func (uc GetDonationUseCase) ExecuteByReference(ctx context.Context, referenceCode string) (entities.Donation, error) {
	if strings.TrimSpace(referenceCode) == "" {
		return entities.Donation{}, domainerrors.ErrInvalidDonationInput
	}
	return uc.Donations.GetDonationByReference(ctx, referenceCode)
}
