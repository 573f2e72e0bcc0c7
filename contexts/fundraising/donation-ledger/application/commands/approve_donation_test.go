package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"caritas/contexts/fundraising/donation-ledger/adapters/memory"
	"caritas/contexts/fundraising/donation-ledger/domain/entities"
	domainerrors "caritas/contexts/fundraising/donation-ledger/domain/errors"
	"caritas/contexts/fundraising/donation-ledger/ports"
)

func pendingDonation(t *testing.T, store *memory.Store, amount string) entities.Donation {
	t.Helper()
	uc := recordUseCase(store, &recordingCache{}, &scriptedRefGen{codes: []string{"DN-PEND2222"}})
	donation, err := uc.Execute(context.Background(), RecordDonationCommand{
		CampaignID: "camp-1",
		Amount:     decimal.RequireFromString(amount),
		Method:     "bank_transfer",
	})
	if err != nil {
		t.Fatalf("seed pending donation: %v", err)
	}
	return donation
}

func TestApproveDonationSettlesExactlyOnce(t *testing.T) {
	store := seededStore("100.00", "0.00", 0)
	donation := pendingDonation(t, store, "30.00")
	cache := &recordingCache{}
	uc := ApproveDonationUseCase{
		Donations: store,
		Cache:     cache,
		Clock:     fixedClock{now: time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)},
	}

	settled, err := uc.Execute(context.Background(), ApproveDonationCommand{
		DonationID: donation.DonationID,
		AdminID:    "admin-1",
	})
	if err != nil {
		t.Fatalf("first approval failed: %v", err)
	}
	if settled.Status != entities.DonationStatusCompleted || settled.SettledAt == nil {
		t.Fatalf("expected completed donation with settled timestamp")
	}

	finance, _ := store.Finance("camp-1")
	if !finance.Raised.Equal(decimal.RequireFromString("30.00")) || finance.Backers != 1 {
		t.Fatalf("expected single increment, got %s / %d", finance.Raised, finance.Backers)
	}

	_, err = uc.Execute(context.Background(), ApproveDonationCommand{
		DonationID: donation.DonationID,
		AdminID:    "admin-1",
	})
	if !errors.Is(err, domainerrors.ErrDonationAlreadySettled) {
		t.Fatalf("expected ErrDonationAlreadySettled on replay, got %v", err)
	}

	finance, _ = store.Finance("camp-1")
	if !finance.Raised.Equal(decimal.RequireFromString("30.00")) || finance.Backers != 1 {
		t.Fatalf("replayed approval must not touch counters, got %s / %d", finance.Raised, finance.Backers)
	}
	if !cache.contains(ports.CacheKeyDonations) || !cache.contains(ports.CacheKeyCampaigns) {
		t.Fatalf("expected both dashboard keys invalidated, got %v", cache.invalidated)
	}
}

func TestApproveDonationDoesNotRecheckAdmissionGuard(t *testing.T) {
	// A pending donation accepted before the goal was reached is still
	// honored once the campaign is fully funded.
	store := seededStore("100.00", "80.00", 2)
	donation := pendingDonation(t, store, "30.00")

	store.SeedCampaign(memory.CampaignFinance{
		CampaignID: "camp-1",
		Goal:       decimal.RequireFromString("100.00"),
		Raised:     decimal.RequireFromString("100.00"),
		Backers:    4,
	})

	uc := ApproveDonationUseCase{
		Donations: store,
		Cache:     &recordingCache{},
		Clock:     fixedClock{now: time.Date(2026, time.March, 2, 11, 0, 0, 0, time.UTC)},
	}
	_, err := uc.Execute(context.Background(), ApproveDonationCommand{
		DonationID: donation.DonationID,
		AdminID:    "admin-1",
	})
	if err != nil {
		t.Fatalf("approval past the goal must succeed, got %v", err)
	}

	finance, _ := store.Finance("camp-1")
	if !finance.Raised.Equal(decimal.RequireFromString("130.00")) {
		t.Fatalf("expected overshoot to 130.00, got %s", finance.Raised)
	}
}

func TestFailDonationLeavesCountersAndBlocksLaterApproval(t *testing.T) {
	store := seededStore("100.00", "0.00", 0)
	donation := pendingDonation(t, store, "15.00")
	clock := fixedClock{now: time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)}

	failUC := FailDonationUseCase{Donations: store, Cache: &recordingCache{}, Clock: clock}
	failed, err := failUC.Execute(context.Background(), FailDonationCommand{
		DonationID: donation.DonationID,
		AdminID:    "admin-1",
	})
	if err != nil {
		t.Fatalf("fail donation: %v", err)
	}
	if failed.Status != entities.DonationStatusFailed {
		t.Fatalf("expected failed status, got %q", failed.Status)
	}

	finance, _ := store.Finance("camp-1")
	if !finance.Raised.IsZero() || finance.Backers != 0 {
		t.Fatalf("failed donation must not touch counters, got %s / %d", finance.Raised, finance.Backers)
	}

	approveUC := ApproveDonationUseCase{Donations: store, Cache: &recordingCache{}, Clock: clock}
	_, err = approveUC.Execute(context.Background(), ApproveDonationCommand{
		DonationID: donation.DonationID,
		AdminID:    "admin-1",
	})
	if !errors.Is(err, domainerrors.ErrDonationAlreadyFailed) {
		t.Fatalf("expected ErrDonationAlreadyFailed, got %v", err)
	}
}
