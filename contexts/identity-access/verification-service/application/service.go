package application

import (
	"context"
	"log/slog"
	"strings"

	"caritas/contexts/identity-access/verification-service/domain/entities"
	domainerrors "caritas/contexts/identity-access/verification-service/domain/errors"
	"caritas/contexts/identity-access/verification-service/ports"
)

// Service answers the two questions other contexts ask about a creator:
// "may they submit?" and "may their submission be published?", and lets
// admins flip the underlying flags.
type Service struct {
	Profiles ports.ProfileRepository
	Cache    ports.DashboardCache
	Clock    ports.Clock
	Logger   *slog.Logger
}

// VerificationState is the read-only view handed to the review queue.
type VerificationState struct {
	PhoneVerified    bool
	IdentityVerified bool
	AddressVerified  bool
}

func (s Service) State(ctx context.Context, creatorID string) (VerificationState, error) {
	profile, err := s.Profiles.GetProfile(ctx, strings.TrimSpace(creatorID))
	if err != nil {
		return VerificationState{}, err
	}
	return VerificationState{
		PhoneVerified:    profile.PhoneVerified,
		IdentityVerified: profile.IdentityVerified,
		AddressVerified:  profile.AddressVerified,
	}, nil
}

// EnsureMaySubmit gates review submission: account in good standing with a
// phone on file. Full verification is checked later, at approval.
func (s Service) EnsureMaySubmit(ctx context.Context, creatorID string) error {
	profile, err := s.Profiles.GetProfile(ctx, strings.TrimSpace(creatorID))
	if err != nil {
		return err
	}
	if !profile.MaySubmit() {
		return domainerrors.ErrCreatorNotEligible
	}
	return nil
}

func (s Service) GetProfile(ctx context.Context, creatorID string) (entities.CreatorProfile, error) {
	return s.Profiles.GetProfile(ctx, strings.TrimSpace(creatorID))
}

func (s Service) ListProfiles(ctx context.Context) ([]entities.CreatorProfile, error) {
	return s.Profiles.ListProfiles(ctx)
}

func (s Service) SetVerification(
	ctx context.Context,
	adminID string,
	creatorID string,
	check entities.VerificationCheck,
	verified bool,
) error {
	logger := resolveLogger(s.Logger)
	if strings.TrimSpace(creatorID) == "" {
		return domainerrors.ErrInvalidProfileInput
	}
	if !entities.IsSupportedCheck(check) {
		return domainerrors.ErrUnsupportedCheckValue
	}

	if err := s.Profiles.SetVerification(ctx, strings.TrimSpace(creatorID), check, verified, s.Clock.Now().UTC()); err != nil {
		return err
	}
	s.Cache.Invalidate(ports.CacheKeyProfiles)

	logger.Info("verification flag updated",
		"event", "verification_flag_updated",
		"module", "identity-access/verification-service",
		"layer", "application",
		"creator_id", strings.TrimSpace(creatorID),
		"check", string(check),
		"verified", verified,
		"admin_id", strings.TrimSpace(adminID),
	)
	return nil
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
