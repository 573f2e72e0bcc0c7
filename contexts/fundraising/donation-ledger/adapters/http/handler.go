package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"caritas/contexts/fundraising/donation-ledger/application/commands"
	"caritas/contexts/fundraising/donation-ledger/application/queries"
	"caritas/contexts/fundraising/donation-ledger/domain/entities"
	domainerrors "caritas/contexts/fundraising/donation-ledger/domain/errors"
	httptransport "caritas/contexts/fundraising/donation-ledger/transport/http"
)

type Handler struct {
	RecordDonation  commands.RecordDonationUseCase
	ApproveDonation commands.ApproveDonationUseCase
	FailDonation    commands.FailDonationUseCase
	GetDonation     queries.GetDonationUseCase
	ListDonations   queries.ListDonationsUseCase
	Logger          *slog.Logger
}

func (h Handler) RecordDonationHandler(
	ctx context.Context,
	campaignID string,
	req httptransport.RecordDonationRequest,
) (httptransport.RecordDonationResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return httptransport.RecordDonationResponse{}, domainerrors.ErrInvalidDonationInput
	}
	donation, err := h.RecordDonation.Execute(ctx, commands.RecordDonationCommand{
		CampaignID: campaignID,
		Amount:     amount,
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		Method:     req.Method,
		Note:       req.Note,
	})
	if err != nil {
		return httptransport.RecordDonationResponse{}, err
	}
	return httptransport.RecordDonationResponse{Donation: mapDonation(donation)}, nil
}

func (h Handler) ApproveDonationHandler(
	ctx context.Context,
	adminID string,
	donationID string,
) (httptransport.ApproveDonationResponse, error) {
	donation, err := h.ApproveDonation.Execute(ctx, commands.ApproveDonationCommand{
		DonationID: donationID,
		AdminID:    adminID,
	})
	if err != nil {
		return httptransport.ApproveDonationResponse{}, err
	}
	return httptransport.ApproveDonationResponse{Donation: mapDonation(donation)}, nil
}

func (h Handler) FailDonationHandler(
	ctx context.Context,
	adminID string,
	donationID string,
) (httptransport.ApproveDonationResponse, error) {
	donation, err := h.FailDonation.Execute(ctx, commands.FailDonationCommand{
		DonationID: donationID,
		AdminID:    adminID,
	})
	if err != nil {
		return httptransport.ApproveDonationResponse{}, err
	}
	return httptransport.ApproveDonationResponse{Donation: mapDonation(donation)}, nil
}

func (h Handler) GetDonationByReferenceHandler(
	ctx context.Context,
	referenceCode string,
) (httptransport.GetDonationResponse, error) {
	donation, err := h.GetDonation.ExecuteByReference(ctx, referenceCode)
	if err != nil {
		return httptransport.GetDonationResponse{}, err
	}
	return httptransport.GetDonationResponse{Donation: mapDonation(donation)}, nil
}

func (h Handler) ListDonationsHandler(
	ctx context.Context,
	campaignID string,
	status string,
) (httptransport.ListDonationsResponse, error) {
	items, err := h.ListDonations.Execute(ctx, queries.ListDonationsQuery{
		CampaignID: campaignID,
		Status:     status,
	})
	if err != nil {
		return httptransport.ListDonationsResponse{}, err
	}
	result := make([]httptransport.DonationDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapDonation(item))
	}
	return httptransport.ListDonationsResponse{Items: result}, nil
}

func mapDonation(item entities.Donation) httptransport.DonationDTO {
	dto := httptransport.DonationDTO{
		DonationID:    item.DonationID,
		ReferenceCode: item.ReferenceCode,
		CampaignID:    item.CampaignID,
		Amount:        item.Amount.StringFixed(2),
		DonorName:     item.DonorName,
		Method:        string(item.Method),
		Status:        string(item.Status),
		Note:          item.Note,
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
	}
	if item.Anonymous() {
		dto.DonorName = "Anonymous"
	}
	if item.SettledAt != nil {
		dto.SettledAt = item.SettledAt.UTC().Format(time.RFC3339)
	}
	return dto
}
