package httpadapter

import (
	"context"
	"log/slog"

	"caritas/contexts/identity-access/verification-service/application"
	"caritas/contexts/identity-access/verification-service/domain/entities"
	httptransport "caritas/contexts/identity-access/verification-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) SetVerificationHandler(
	ctx context.Context,
	adminID string,
	creatorID string,
	req httptransport.SetVerificationRequest,
) (httptransport.SetVerificationResponse, error) {
	check := entities.VerificationCheck(req.Check)
	if err := h.Service.SetVerification(ctx, adminID, creatorID, check, req.Verified); err != nil {
		return httptransport.SetVerificationResponse{}, err
	}
	profile, err := h.Service.GetProfile(ctx, creatorID)
	if err != nil {
		return httptransport.SetVerificationResponse{}, err
	}
	return httptransport.SetVerificationResponse{Profile: mapProfile(profile)}, nil
}

func mapProfile(item entities.CreatorProfile) httptransport.ProfileDTO {
	return httptransport.ProfileDTO{
		CreatorID:        item.CreatorID,
		DisplayName:      item.DisplayName,
		Email:            item.Email,
		Phone:            item.Phone,
		PhoneVerified:    item.PhoneVerified,
		IdentityVerified: item.IdentityVerified,
		AddressVerified:  item.AddressVerified,
		Disabled:         item.Disabled,
		OnHold:           item.OnHold,
	}
}
