package application

import (
	"context"
	"encoding/json"
	"log/slog"

	"caritas/contexts/internal-ops/admin-dashboard-service/ports"
)

// Service serves the admin dashboard's read side. Every collection is read
// through the cache: a hit inside the TTL window is returned as-is, a miss
// falls through to the owning context and the marshaled result is stored
// under the collection's key.
type Service struct {
	Campaigns ports.CampaignReader
	Reviews   ports.ReviewReader
	Donations ports.DonationReader
	Profiles  ports.ProfileReader
	Cache     ports.Cache
	Logger    *slog.Logger
}

func (s Service) ListCampaigns(ctx context.Context) ([]ports.CampaignSummary, error) {
	var items []ports.CampaignSummary
	err := s.cached(ctx, ports.CacheKeyCampaigns, &items, func(ctx context.Context) (any, error) {
		return s.Campaigns.ListCampaignSummaries(ctx)
	})
	return items, err
}

func (s Service) ListPendingReviews(ctx context.Context) ([]ports.ReviewSummary, error) {
	var items []ports.ReviewSummary
	err := s.cached(ctx, ports.CacheKeyReviews, &items, func(ctx context.Context) (any, error) {
		return s.Reviews.ListPendingReviewSummaries(ctx)
	})
	return items, err
}

func (s Service) ListDonations(ctx context.Context) ([]ports.DonationSummary, error) {
	var items []ports.DonationSummary
	err := s.cached(ctx, ports.CacheKeyDonations, &items, func(ctx context.Context) (any, error) {
		return s.Donations.ListDonationSummaries(ctx)
	})
	return items, err
}

func (s Service) ListProfiles(ctx context.Context) ([]ports.ProfileSummary, error) {
	var items []ports.ProfileSummary
	err := s.cached(ctx, ports.CacheKeyProfiles, &items, func(ctx context.Context) (any, error) {
		return s.Profiles.ListProfileSummaries(ctx)
	})
	return items, err
}

func (s Service) cached(
	ctx context.Context,
	key string,
	out any,
	load func(ctx context.Context) (any, error),
) error {
	logger := resolveLogger(s.Logger)

	if payload, hit := s.Cache.Get(key); hit {
		if err := json.Unmarshal(payload, out); err == nil {
			return nil
		}
		// Corrupt entry; drop it and reload from the source.
		s.Cache.Invalidate(key)
	}

	loaded, err := load(ctx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(loaded)
	if err != nil {
		return err
	}
	s.Cache.Put(key, payload)

	logger.Debug("dashboard cache filled",
		"event", "dashboard_cache_filled",
		"module", "internal-ops/admin-dashboard-service",
		"layer", "application",
		"cache_key", key,
	)
	return json.Unmarshal(payload, out)
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
