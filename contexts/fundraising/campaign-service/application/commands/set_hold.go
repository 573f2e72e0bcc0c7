package commands

import (
	"context"
	"log/slog"
	"strings"

	application "caritas/contexts/fundraising/campaign-service/application"
	"caritas/contexts/fundraising/campaign-service/domain/entities"
	domainerrors "caritas/contexts/fundraising/campaign-service/domain/errors"
	"caritas/contexts/fundraising/campaign-service/ports"
)

type SetHoldCommand struct {
	CampaignID string
	AdminID    string
	OnHold     bool
}

// SetHoldUseCase toggles live/on_hold visibility. It is not a financial
// operation: raised and backers stay attributed to the campaign throughout.
type SetHoldUseCase struct {
	Campaigns ports.CampaignRepository
	Cache     ports.DashboardCache
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc SetHoldUseCase) Execute(ctx context.Context, cmd SetHoldCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	campaignID := strings.TrimSpace(cmd.CampaignID)
	if campaignID == "" {
		return domainerrors.ErrInvalidCampaignInput
	}

	current, err := uc.Campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if current.Status == entities.CampaignStatusPending {
		return domainerrors.ErrCampaignNotPublished
	}

	next := entities.CampaignStatusLive
	if cmd.OnHold {
		next = entities.CampaignStatusOnHold
	}
	if err := uc.Campaigns.SetCampaignStatus(ctx, campaignID, next, uc.Clock.Now().UTC()); err != nil {
		return err
	}
	uc.Cache.Invalidate(ports.CacheKeyCampaigns)

	logger.Info("campaign hold toggled",
		"event", "campaign_hold_toggled",
		"module", "fundraising/campaign-service",
		"layer", "application",
		"campaign_id", campaignID,
		"status", string(next),
		"admin_id", strings.TrimSpace(cmd.AdminID),
	)
	return nil
}
