package queries

import (
	"context"
	"log/slog"
	"strings"

	"caritas/contexts/fundraising/campaign-service/domain/entities"
	"caritas/contexts/fundraising/campaign-service/ports"
)

type ListCampaignsQuery struct {
	CreatorID  string
	Status     string
	PublicOnly bool
}

type ListCampaignsUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

func (uc ListCampaignsUseCase) Execute(ctx context.Context, query ListCampaignsQuery) ([]entities.Campaign, error) {
	filter := ports.CampaignFilter{
		CreatorID:  strings.TrimSpace(query.CreatorID),
		PublicOnly: query.PublicOnly,
	}
	if status := entities.CampaignStatus(strings.TrimSpace(query.Status)); status != "" && entities.IsSupportedStatus(status) {
		filter.Status = status
	}
	return uc.Campaigns.ListCampaigns(ctx, filter)
}
