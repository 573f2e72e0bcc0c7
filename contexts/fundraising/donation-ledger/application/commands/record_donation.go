package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	application "caritas/contexts/fundraising/donation-ledger/application"
	"caritas/contexts/fundraising/donation-ledger/domain/entities"
	domainerrors "caritas/contexts/fundraising/donation-ledger/domain/errors"
	"caritas/contexts/fundraising/donation-ledger/ports"
)

const referenceCodeAttempts = 3

type RecordDonationCommand struct {
	CampaignID    string
	Amount        decimal.Decimal
	DonorName     string
	DonorEmail    string
	Method        string
	Note          string
	ReferenceCode string
}

// RecordDonationUseCase is the donor entry point. Instant methods settle in
// one unit of work (donation insert plus counter increment); methods that
// need manual confirmation insert a pending row and leave counters alone.
type RecordDonationUseCase struct {
	Donations ports.DonationRepository
	RefCodes  ports.ReferenceGenerator
	Cache     ports.DashboardCache
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc RecordDonationUseCase) Execute(ctx context.Context, cmd RecordDonationCommand) (entities.Donation, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	donationID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Donation{}, err
	}

	donation := entities.Donation{
		DonationID:    donationID,
		ReferenceCode: strings.TrimSpace(cmd.ReferenceCode),
		CampaignID:    strings.TrimSpace(cmd.CampaignID),
		Amount:        cmd.Amount,
		DonorName:     strings.TrimSpace(cmd.DonorName),
		DonorEmail:    strings.TrimSpace(cmd.DonorEmail),
		Method:        entities.PaymentMethod(strings.TrimSpace(cmd.Method)),
		Note:          strings.TrimSpace(cmd.Note),
		CreatedAt:     now,
	}
	if !donation.ValidateBasics() {
		return entities.Donation{}, domainerrors.ErrInvalidDonationInput
	}

	if entities.RequiresManualConfirmation(donation.Method) {
		donation.Status = entities.DonationStatusPending
	} else {
		donation.Status = entities.DonationStatusCompleted
		settledAt := now
		donation.SettledAt = &settledAt
	}

	stored, err := uc.persistWithFreshCode(ctx, donation)
	if err != nil {
		return entities.Donation{}, err
	}

	uc.Cache.Invalidate(ports.CacheKeyDonations)
	if stored.Status == entities.DonationStatusCompleted {
		uc.Cache.Invalidate(ports.CacheKeyCampaigns)
	}

	logger.Info("donation recorded",
		"event", "donation_recorded",
		"module", "fundraising/donation-ledger",
		"layer", "application",
		"donation_id", stored.DonationID,
		"campaign_id", stored.CampaignID,
		"reference_code", stored.ReferenceCode,
		"status", string(stored.Status),
		"method", string(stored.Method),
	)
	return stored, nil
}

// persistWithFreshCode retries the insert with a new reference code when the
// unique constraint rejects a collision. Supplied codes are not retried.
func (uc RecordDonationUseCase) persistWithFreshCode(
	ctx context.Context,
	donation entities.Donation,
) (entities.Donation, error) {
	supplied := donation.ReferenceCode != ""

	for attempt := 0; attempt < referenceCodeAttempts; attempt++ {
		if donation.ReferenceCode == "" {
			code, err := uc.RefCodes.NewReferenceCode(ctx)
			if err != nil {
				return entities.Donation{}, err
			}
			donation.ReferenceCode = code
		}

		stored, err := uc.persist(ctx, donation)
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, domainerrors.ErrReferenceCodeTaken) || supplied {
			return entities.Donation{}, err
		}
		donation.ReferenceCode = ""
	}
	return entities.Donation{}, domainerrors.ErrReferenceCodeExhausted
}

func (uc RecordDonationUseCase) persist(ctx context.Context, donation entities.Donation) (entities.Donation, error) {
	if donation.Status == entities.DonationStatusCompleted {
		return uc.Donations.SettleDonation(ctx, donation)
	}
	return uc.Donations.InsertPendingDonation(ctx, donation)
}
