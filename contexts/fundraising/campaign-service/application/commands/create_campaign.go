package commands

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	application "caritas/contexts/fundraising/campaign-service/application"
	"caritas/contexts/fundraising/campaign-service/domain/entities"
	domainerrors "caritas/contexts/fundraising/campaign-service/domain/errors"
	"caritas/contexts/fundraising/campaign-service/ports"
)

type CreateCampaignCommand struct {
	AdminID     string
	CreatorID   string
	Title       string
	Description string
	FullText    string
	Category    string
	ImageURL    string
	Goal        decimal.Decimal
}

// CreateCampaignUseCase publishes a campaign directly, bypassing the review
// queue. Admin-only path; counters start at zero.
type CreateCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Cache     ports.DashboardCache
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	campaignID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Campaign{}, err
	}

	campaign := entities.Campaign{
		CampaignID:  campaignID,
		CreatorID:   strings.TrimSpace(cmd.CreatorID),
		Title:       strings.TrimSpace(cmd.Title),
		Description: strings.TrimSpace(cmd.Description),
		FullText:    strings.TrimSpace(cmd.FullText),
		Category:    strings.TrimSpace(cmd.Category),
		ImageURL:    strings.TrimSpace(cmd.ImageURL),
		Goal:        cmd.Goal,
		Raised:      decimal.Zero,
		Backers:     0,
		Verified:    true,
		Status:      entities.CampaignStatusLive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if campaign.ImageURL == "" {
		campaign.ImageURL = entities.DefaultImageURL
	}
	if !campaign.ValidateBasics() || campaign.CreatorID == "" {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}

	if err := uc.Campaigns.CreateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}
	uc.Cache.Invalidate(ports.CacheKeyCampaigns)

	logger.Info("campaign created",
		"event", "campaign_created",
		"module", "fundraising/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"creator_id", campaign.CreatorID,
		"admin_id", strings.TrimSpace(cmd.AdminID),
	)
	return campaign, nil
}
