package queries

import (
	"context"
	"log/slog"
	"strings"

	"caritas/contexts/fundraising/campaign-service/domain/entities"
	domainerrors "caritas/contexts/fundraising/campaign-service/domain/errors"
	"caritas/contexts/fundraising/campaign-service/ports"
)

type GetCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

func (uc GetCampaignUseCase) Execute(ctx context.Context, campaignID string) (entities.Campaign, error) {
	if strings.TrimSpace(campaignID) == "" {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}
	return uc.Campaigns.GetCampaign(ctx, campaignID)
}
