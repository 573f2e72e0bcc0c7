package commands

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"caritas/contexts/fundraising/donation-ledger/adapters/memory"
	"caritas/contexts/fundraising/donation-ledger/domain/entities"
	domainerrors "caritas/contexts/fundraising/donation-ledger/domain/errors"
	"caritas/contexts/fundraising/donation-ledger/ports"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type seqIDGen struct {
	next int
}

func (g *seqIDGen) NewID(_ context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("donation-%d", g.next), nil
}

type scriptedRefGen struct {
	codes []string
	calls int
}

func (g *scriptedRefGen) NewReferenceCode(_ context.Context) (string, error) {
	if g.calls >= len(g.codes) {
		return "", errors.New("no more scripted codes")
	}
	code := g.codes[g.calls]
	g.calls++
	return code, nil
}

type recordingCache struct {
	invalidated []string
}

func (c *recordingCache) Invalidate(key string) {
	c.invalidated = append(c.invalidated, key)
}

func (c *recordingCache) InvalidateAll() {
	c.invalidated = append(c.invalidated, "*")
}

func (c *recordingCache) contains(key string) bool {
	for _, item := range c.invalidated {
		if item == key {
			return true
		}
	}
	return false
}

func seededStore(goal string, raised string, backers int) *memory.Store {
	return memory.NewStore([]memory.CampaignFinance{{
		CampaignID: "camp-1",
		Goal:       decimal.RequireFromString(goal),
		Raised:     decimal.RequireFromString(raised),
		Backers:    backers,
	}})
}

func recordUseCase(store *memory.Store, cache *recordingCache, refGen ports.ReferenceGenerator) RecordDonationUseCase {
	return RecordDonationUseCase{
		Donations: store,
		RefCodes:  refGen,
		Cache:     cache,
		Clock:     fixedClock{now: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)},
		IDGen:     &seqIDGen{},
	}
}

func TestRecordDonationSettlesCardDonationAtomically(t *testing.T) {
	store := seededStore("100.00", "0.00", 0)
	cache := &recordingCache{}
	uc := recordUseCase(store, cache, &scriptedRefGen{codes: []string{"DN-AAAA2222"}})

	donation, err := uc.Execute(context.Background(), RecordDonationCommand{
		CampaignID: "camp-1",
		Amount:     decimal.RequireFromString("40.00"),
		DonorName:  "Ada",
		Method:     "card",
	})
	if err != nil {
		t.Fatalf("expected card donation to settle, got %v", err)
	}
	if donation.Status != entities.DonationStatusCompleted {
		t.Fatalf("expected completed status, got %q", donation.Status)
	}
	if donation.SettledAt == nil {
		t.Fatalf("expected settled timestamp on instant settlement")
	}

	finance, ok := store.Finance("camp-1")
	if !ok {
		t.Fatalf("campaign finance missing")
	}
	if !finance.Raised.Equal(decimal.RequireFromString("40.00")) {
		t.Fatalf("expected raised 40.00, got %s", finance.Raised)
	}
	if finance.Backers != 1 {
		t.Fatalf("expected 1 backer, got %d", finance.Backers)
	}
	if !cache.contains(ports.CacheKeyDonations) || !cache.contains(ports.CacheKeyCampaigns) {
		t.Fatalf("expected both dashboard keys invalidated, got %v", cache.invalidated)
	}
}

func TestRecordDonationRejectsFullyFundedCampaign(t *testing.T) {
	store := seededStore("100.00", "100.00", 3)
	cache := &recordingCache{}
	uc := recordUseCase(store, cache, &scriptedRefGen{codes: []string{"DN-BBBB2222"}})

	_, err := uc.Execute(context.Background(), RecordDonationCommand{
		CampaignID: "camp-1",
		Amount:     decimal.RequireFromString("5.00"),
		Method:     "card",
	})
	if !errors.Is(err, domainerrors.ErrCampaignFullyFunded) {
		t.Fatalf("expected ErrCampaignFullyFunded, got %v", err)
	}

	finance, _ := store.Finance("camp-1")
	if !finance.Raised.Equal(decimal.RequireFromString("100.00")) || finance.Backers != 3 {
		t.Fatalf("counters must be untouched after rejected admission, got %s / %d", finance.Raised, finance.Backers)
	}
	items, _ := store.ListDonations(context.Background(), ports.DonationFilter{CampaignID: "camp-1"})
	if len(items) != 0 {
		t.Fatalf("expected no donation row after rejection, got %d", len(items))
	}
}

func TestRecordDonationAllowsOvershootOfGoal(t *testing.T) {
	store := seededStore("100.00", "90.00", 2)
	cache := &recordingCache{}
	uc := recordUseCase(store, cache, &scriptedRefGen{codes: []string{"DN-CCCC2222"}})

	_, err := uc.Execute(context.Background(), RecordDonationCommand{
		CampaignID: "camp-1",
		Amount:     decimal.RequireFromString("50.00"),
		Method:     "wallet",
	})
	if err != nil {
		t.Fatalf("donation admitted below goal must settle in full, got %v", err)
	}

	finance, _ := store.Finance("camp-1")
	if !finance.Raised.Equal(decimal.RequireFromString("140.00")) {
		t.Fatalf("expected raised 140.00 after overshoot, got %s", finance.Raised)
	}
}

func TestRecordDonationBankTransferStaysPending(t *testing.T) {
	store := seededStore("100.00", "10.00", 1)
	cache := &recordingCache{}
	uc := recordUseCase(store, cache, &scriptedRefGen{codes: []string{"DN-DDDD2222"}})

	donation, err := uc.Execute(context.Background(), RecordDonationCommand{
		CampaignID: "camp-1",
		Amount:     decimal.RequireFromString("25.00"),
		Method:     "bank_transfer",
	})
	if err != nil {
		t.Fatalf("expected pending insert to succeed, got %v", err)
	}
	if donation.Status != entities.DonationStatusPending {
		t.Fatalf("expected pending status, got %q", donation.Status)
	}
	if donation.SettledAt != nil {
		t.Fatalf("pending donation must not carry a settled timestamp")
	}

	finance, _ := store.Finance("camp-1")
	if !finance.Raised.Equal(decimal.RequireFromString("10.00")) || finance.Backers != 1 {
		t.Fatalf("pending insert must not touch counters, got %s / %d", finance.Raised, finance.Backers)
	}
	if cache.contains(ports.CacheKeyCampaigns) {
		t.Fatalf("campaign key must not be invalidated for a pending insert")
	}
	if !cache.contains(ports.CacheKeyDonations) {
		t.Fatalf("donations key must be invalidated")
	}
}

func TestRecordDonationRetriesGeneratedReferenceCodeOnCollision(t *testing.T) {
	store := seededStore("100.00", "0.00", 0)
	cache := &recordingCache{}
	refGen := &scriptedRefGen{codes: []string{"DN-TAKEN222", "DN-TAKEN222", "DN-FRESH222"}}
	uc := recordUseCase(store, cache, refGen)

	first, err := uc.Execute(context.Background(), RecordDonationCommand{
		CampaignID: "camp-1",
		Amount:     decimal.RequireFromString("10.00"),
		Method:     "card",
	})
	if err != nil {
		t.Fatalf("first donation failed: %v", err)
	}
	if first.ReferenceCode != "DN-TAKEN222" {
		t.Fatalf("unexpected first code %q", first.ReferenceCode)
	}

	second, err := uc.Execute(context.Background(), RecordDonationCommand{
		CampaignID: "camp-1",
		Amount:     decimal.RequireFromString("10.00"),
		Method:     "card",
	})
	if err != nil {
		t.Fatalf("expected collision retry to succeed, got %v", err)
	}
	if second.ReferenceCode != "DN-FRESH222" {
		t.Fatalf("expected retry to land on fresh code, got %q", second.ReferenceCode)
	}
}

func TestRecordDonationSuppliedCodeConflictIsNotRetried(t *testing.T) {
	store := seededStore("100.00", "0.00", 0)
	cache := &recordingCache{}
	refGen := &scriptedRefGen{codes: []string{"DN-EEEE2222"}}
	uc := recordUseCase(store, cache, refGen)

	_, err := uc.Execute(context.Background(), RecordDonationCommand{
		CampaignID: "camp-1",
		Amount:     decimal.RequireFromString("10.00"),
		Method:     "card",
	})
	if err != nil {
		t.Fatalf("seed donation failed: %v", err)
	}

	_, err = uc.Execute(context.Background(), RecordDonationCommand{
		CampaignID:    "camp-1",
		Amount:        decimal.RequireFromString("10.00"),
		Method:        "card",
		ReferenceCode: "DN-EEEE2222",
	})
	if !errors.Is(err, domainerrors.ErrReferenceCodeTaken) {
		t.Fatalf("expected ErrReferenceCodeTaken for a supplied duplicate, got %v", err)
	}
	if refGen.calls != 1 {
		t.Fatalf("generator must not run for supplied codes, calls=%d", refGen.calls)
	}
}

func TestRecordDonationRejectsUnsupportedMethod(t *testing.T) {
	store := seededStore("100.00", "0.00", 0)
	uc := recordUseCase(store, &recordingCache{}, &scriptedRefGen{codes: []string{"DN-FFFF2222"}})

	_, err := uc.Execute(context.Background(), RecordDonationCommand{
		CampaignID: "camp-1",
		Amount:     decimal.RequireFromString("10.00"),
		Method:     "cheque",
	})
	if !errors.Is(err, domainerrors.ErrInvalidDonationInput) {
		t.Fatalf("expected ErrInvalidDonationInput, got %v", err)
	}
}
