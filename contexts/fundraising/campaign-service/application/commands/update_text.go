package commands

import (
	"context"
	"log/slog"
	"strings"

	application "caritas/contexts/fundraising/campaign-service/application"
	domainerrors "caritas/contexts/fundraising/campaign-service/domain/errors"
	"caritas/contexts/fundraising/campaign-service/ports"
)

type UpdateTextCommand struct {
	CampaignID  string
	AdminID     string
	Title       *string
	Description *string
	FullText    *string
	Category    *string
}

// UpdateTextUseCase edits descriptive fields only. The repository port cannot
// express a counter write, so raised/backers are untouchable from here.
type UpdateTextUseCase struct {
	Campaigns ports.CampaignRepository
	Cache     ports.DashboardCache
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc UpdateTextUseCase) Execute(ctx context.Context, cmd UpdateTextCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	campaignID := strings.TrimSpace(cmd.CampaignID)
	if campaignID == "" {
		return domainerrors.ErrInvalidCampaignInput
	}
	if cmd.Title == nil && cmd.Description == nil && cmd.FullText == nil && cmd.Category == nil {
		return domainerrors.ErrInvalidCampaignInput
	}
	if cmd.Title != nil {
		title := strings.TrimSpace(*cmd.Title)
		if len(title) < 3 || len(title) > 120 {
			return domainerrors.ErrInvalidCampaignInput
		}
	}
	if cmd.Category != nil && strings.TrimSpace(*cmd.Category) == "" {
		return domainerrors.ErrInvalidCampaignInput
	}

	update := ports.TextUpdate{
		Title:       trimmed(cmd.Title),
		Description: trimmed(cmd.Description),
		FullText:    trimmed(cmd.FullText),
		Category:    trimmed(cmd.Category),
	}
	if err := uc.Campaigns.UpdateCampaignText(ctx, campaignID, update, uc.Clock.Now().UTC()); err != nil {
		return err
	}
	uc.Cache.Invalidate(ports.CacheKeyCampaigns)

	logger.Info("campaign text updated",
		"event", "campaign_text_updated",
		"module", "fundraising/campaign-service",
		"layer", "application",
		"campaign_id", campaignID,
		"admin_id", strings.TrimSpace(cmd.AdminID),
	)
	return nil
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	out := strings.TrimSpace(*value)
	return &out
}
