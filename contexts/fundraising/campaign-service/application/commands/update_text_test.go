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
)

func strPtr(value string) *string { return &value }

func TestUpdateTextChangesOnlyProvidedFields(t *testing.T) {
	store := memory.NewStore([]entities.Campaign{liveCampaign("camp-1")})
	uc := UpdateTextUseCase{
		Campaigns: store,
		Cache:     &recordingCache{},
		Clock:     fixedClock{now: time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)},
	}

	err := uc.Execute(context.Background(), UpdateTextCommand{
		CampaignID: "camp-1",
		AdminID:    "admin-1",
		Title:      strPtr("Deeper community well"),
		FullText:   strPtr("Updated project plan"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	updated, _ := store.GetCampaign(context.Background(), "camp-1")
	if updated.Title != "Deeper community well" {
		t.Fatalf("expected new title, got %q", updated.Title)
	}
	if updated.FullText != "Updated project plan" {
		t.Fatalf("expected new full text, got %q", updated.FullText)
	}
	if updated.Description != "Clean water for the village" {
		t.Fatalf("omitted description must be preserved, got %q", updated.Description)
	}
	if updated.Category != "infrastructure" {
		t.Fatalf("omitted category must be preserved, got %q", updated.Category)
	}
	if !updated.Raised.Equal(decimal.RequireFromString("1250.00")) || updated.Backers != 17 {
		t.Fatalf("text edit must not move counters, got %s / %d", updated.Raised, updated.Backers)
	}
	if !updated.Goal.Equal(decimal.RequireFromString("5000.00")) {
		t.Fatalf("text edit must not move the goal, got %s", updated.Goal)
	}
}

func TestUpdateTextRejectsEmptyPatch(t *testing.T) {
	store := memory.NewStore([]entities.Campaign{liveCampaign("camp-1")})
	uc := UpdateTextUseCase{
		Campaigns: store,
		Cache:     &recordingCache{},
		Clock:     fixedClock{now: time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)},
	}

	err := uc.Execute(context.Background(), UpdateTextCommand{CampaignID: "camp-1", AdminID: "admin-1"})
	if !errors.Is(err, domainerrors.ErrInvalidCampaignInput) {
		t.Fatalf("expected ErrInvalidCampaignInput for empty patch, got %v", err)
	}
}

func TestUpdateTextRejectsShortTitle(t *testing.T) {
	store := memory.NewStore([]entities.Campaign{liveCampaign("camp-1")})
	uc := UpdateTextUseCase{
		Campaigns: store,
		Cache:     &recordingCache{},
		Clock:     fixedClock{now: time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)},
	}

	err := uc.Execute(context.Background(), UpdateTextCommand{
		CampaignID: "camp-1",
		AdminID:    "admin-1",
		Title:      strPtr("ab"),
	})
	if !errors.Is(err, domainerrors.ErrInvalidCampaignInput) {
		t.Fatalf("expected ErrInvalidCampaignInput for short title, got %v", err)
	}

	unchanged, _ := store.GetCampaign(context.Background(), "camp-1")
	if unchanged.Title != "Community well" {
		t.Fatalf("rejected update must not change the title, got %q", unchanged.Title)
	}
}
