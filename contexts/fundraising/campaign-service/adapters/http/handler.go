package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"caritas/contexts/fundraising/campaign-service/application/commands"
	"caritas/contexts/fundraising/campaign-service/application/queries"
	"caritas/contexts/fundraising/campaign-service/domain/entities"
	domainerrors "caritas/contexts/fundraising/campaign-service/domain/errors"
	httptransport "caritas/contexts/fundraising/campaign-service/transport/http"
)

type Handler struct {
	CreateCampaign commands.CreateCampaignUseCase
	UpdateText     commands.UpdateTextUseCase
	SetHold        commands.SetHoldUseCase
	DeleteCampaign commands.DeleteCampaignUseCase
	GetCampaign    queries.GetCampaignUseCase
	ListCampaigns  queries.ListCampaignsUseCase
	Logger         *slog.Logger
}

func (h Handler) CreateCampaignHandler(
	ctx context.Context,
	adminID string,
	req httptransport.CreateCampaignRequest,
) (httptransport.CreateCampaignResponse, error) {
	goal, err := decimal.NewFromString(req.Goal)
	if err != nil {
		return httptransport.CreateCampaignResponse{}, domainerrors.ErrInvalidCampaignInput
	}
	campaign, err := h.CreateCampaign.Execute(ctx, commands.CreateCampaignCommand{
		AdminID:     adminID,
		CreatorID:   req.CreatorID,
		Title:       req.Title,
		Description: req.Description,
		FullText:    req.FullText,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Goal:        goal,
	})
	if err != nil {
		return httptransport.CreateCampaignResponse{}, err
	}
	return httptransport.CreateCampaignResponse{Campaign: mapCampaign(campaign)}, nil
}

func (h Handler) UpdateTextHandler(
	ctx context.Context,
	adminID string,
	campaignID string,
	req httptransport.UpdateTextRequest,
) error {
	return h.UpdateText.Execute(ctx, commands.UpdateTextCommand{
		CampaignID:  campaignID,
		AdminID:     adminID,
		Title:       req.Title,
		Description: req.Description,
		FullText:    req.FullText,
		Category:    req.Category,
	})
}

func (h Handler) SetHoldHandler(
	ctx context.Context,
	adminID string,
	campaignID string,
	req httptransport.SetHoldRequest,
) error {
	return h.SetHold.Execute(ctx, commands.SetHoldCommand{
		CampaignID: campaignID,
		AdminID:    adminID,
		OnHold:     req.OnHold,
	})
}

func (h Handler) DeleteCampaignHandler(ctx context.Context, adminID string, campaignID string) error {
	return h.DeleteCampaign.Execute(ctx, commands.DeleteCampaignCommand{
		CampaignID: campaignID,
		AdminID:    adminID,
	})
}

func (h Handler) GetCampaignHandler(ctx context.Context, campaignID string) (httptransport.GetCampaignResponse, error) {
	item, err := h.GetCampaign.Execute(ctx, campaignID)
	if err != nil {
		return httptransport.GetCampaignResponse{}, err
	}
	return httptransport.GetCampaignResponse{Campaign: mapCampaign(item)}, nil
}

func (h Handler) ListCampaignsHandler(
	ctx context.Context,
	creatorID string,
	status string,
	publicOnly bool,
) (httptransport.ListCampaignsResponse, error) {
	items, err := h.ListCampaigns.Execute(ctx, queries.ListCampaignsQuery{
		CreatorID:  creatorID,
		Status:     status,
		PublicOnly: publicOnly,
	})
	if err != nil {
		return httptransport.ListCampaignsResponse{}, err
	}
	result := make([]httptransport.CampaignDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapCampaign(item))
	}
	return httptransport.ListCampaignsResponse{Items: result}, nil
}

func mapCampaign(item entities.Campaign) httptransport.CampaignDTO {
	return httptransport.CampaignDTO{
		CampaignID:  item.CampaignID,
		CreatorID:   item.CreatorID,
		Title:       item.Title,
		Description: item.Description,
		FullText:    item.FullText,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		Goal:        item.Goal.StringFixed(2),
		Raised:      item.Raised.StringFixed(2),
		Backers:     item.Backers,
		Verified:    item.Verified,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
