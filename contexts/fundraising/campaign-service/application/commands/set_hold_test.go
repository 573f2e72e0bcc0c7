package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"caritas/contexts/fundraising/campaign-service/adapters/memory"
	"caritas/contexts/fundraising/campaign-service/domain/entities"
	domainerrors "caritas/contexts/fundraising/campaign-service/domain/errors"
	"caritas/contexts/fundraising/campaign-service/ports"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type recordingCache struct {
	invalidated []string
}

func (c *recordingCache) Invalidate(key string) {
	c.invalidated = append(c.invalidated, key)
}

func (c *recordingCache) InvalidateAll() {
	c.invalidated = append(c.invalidated, "*")
}

func liveCampaign(campaignID string) entities.Campaign {
	return entities.Campaign{
		CampaignID:  campaignID,
		CreatorID:   "creator-1",
		Title:       "Community well",
		Description: "Clean water for the village",
		Category:    "infrastructure",
		ImageURL:    entities.DefaultImageURL,
		Goal:        decimal.RequireFromString("5000.00"),
		Raised:      decimal.RequireFromString("1250.00"),
		Backers:     17,
		Verified:    true,
		Status:      entities.CampaignStatusLive,
		CreatedAt:   time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestSetHoldLeavesFinancialsUntouched(t *testing.T) {
	store := memory.NewStore([]entities.Campaign{liveCampaign("camp-1")})
	uc := SetHoldUseCase{
		Campaigns: store,
		Cache:     &recordingCache{},
		Clock:     fixedClock{now: time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)},
	}

	if err := uc.Execute(context.Background(), SetHoldCommand{CampaignID: "camp-1", AdminID: "admin-1", OnHold: true}); err != nil {
		t.Fatalf("hold failed: %v", err)
	}

	held, _ := store.GetCampaign(context.Background(), "camp-1")
	if held.Status != entities.CampaignStatusOnHold {
		t.Fatalf("expected on_hold status, got %q", held.Status)
	}
	if !held.Raised.Equal(decimal.RequireFromString("1250.00")) || held.Backers != 17 {
		t.Fatalf("hold must not move financials, got %s / %d", held.Raised, held.Backers)
	}

	public, _ := store.ListCampaigns(context.Background(), ports.CampaignFilter{PublicOnly: true})
	if len(public) != 0 {
		t.Fatalf("held campaign must not be publicly visible, got %d", len(public))
	}

	if err := uc.Execute(context.Background(), SetHoldCommand{CampaignID: "camp-1", AdminID: "admin-1", OnHold: false}); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	released, _ := store.GetCampaign(context.Background(), "camp-1")
	if released.Status != entities.CampaignStatusLive {
		t.Fatalf("expected live after release, got %q", released.Status)
	}
	if !released.Raised.Equal(decimal.RequireFromString("1250.00")) || released.Backers != 17 {
		t.Fatalf("release must not move financials, got %s / %d", released.Raised, released.Backers)
	}
}

func TestSetHoldRejectsUnpublishedCampaign(t *testing.T) {
	pending := liveCampaign("camp-1")
	pending.Status = entities.CampaignStatusPending
	store := memory.NewStore([]entities.Campaign{pending})
	uc := SetHoldUseCase{
		Campaigns: store,
		Cache:     &recordingCache{},
		Clock:     fixedClock{now: time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)},
	}

	err := uc.Execute(context.Background(), SetHoldCommand{CampaignID: "camp-1", AdminID: "admin-1", OnHold: true})
	if !errors.Is(err, domainerrors.ErrCampaignNotPublished) {
		t.Fatalf("expected ErrCampaignNotPublished, got %v", err)
	}
}

func TestDeleteCampaignRemovesListing(t *testing.T) {
	store := memory.NewStore([]entities.Campaign{liveCampaign("camp-1")})
	uc := DeleteCampaignUseCase{
		Campaigns: store,
		Cache:     &recordingCache{},
	}

	if err := uc.Execute(context.Background(), DeleteCampaignCommand{CampaignID: "camp-1", AdminID: "admin-1"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.GetCampaign(context.Background(), "camp-1"); !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound after delete, got %v", err)
	}

	err := uc.Execute(context.Background(), DeleteCampaignCommand{CampaignID: "camp-1", AdminID: "admin-1"})
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound on replay, got %v", err)
	}
}
