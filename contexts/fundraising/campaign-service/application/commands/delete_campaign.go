package commands

import (
	"context"
	"log/slog"
	"strings"

	application "caritas/contexts/fundraising/campaign-service/application"
	domainerrors "caritas/contexts/fundraising/campaign-service/domain/errors"
	"caritas/contexts/fundraising/campaign-service/ports"
)

type DeleteCampaignCommand struct {
	CampaignID string
	AdminID    string
}

// DeleteCampaignUseCase removes the campaign row. Donation rows are retained
// as historical ledger entries and keep their campaign reference.
type DeleteCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Cache     ports.DashboardCache
	Logger    *slog.Logger
}

func (uc DeleteCampaignUseCase) Execute(ctx context.Context, cmd DeleteCampaignCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	campaignID := strings.TrimSpace(cmd.CampaignID)
	if campaignID == "" {
		return domainerrors.ErrInvalidCampaignInput
	}

	if err := uc.Campaigns.DeleteCampaign(ctx, campaignID); err != nil {
		return err
	}
	uc.Cache.Invalidate(ports.CacheKeyCampaigns)

	logger.Info("campaign deleted",
		"event", "campaign_deleted",
		"module", "fundraising/campaign-service",
		"layer", "application",
		"campaign_id", campaignID,
		"admin_id", strings.TrimSpace(cmd.AdminID),
	)
	return nil
}
