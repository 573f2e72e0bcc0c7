package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"caritas/contexts/internal-ops/admin-dashboard-service/adapters/memorycache"
	"caritas/contexts/internal-ops/admin-dashboard-service/ports"
)

type countingCampaignReader struct {
	calls int
	items []ports.CampaignSummary
}

func (r *countingCampaignReader) ListCampaignSummaries(_ context.Context) ([]ports.CampaignSummary, error) {
	r.calls++
	return r.items, nil
}

type countingReviewReader struct {
	calls int
}

func (r *countingReviewReader) ListPendingReviewSummaries(_ context.Context) ([]ports.ReviewSummary, error) {
	r.calls++
	return []ports.ReviewSummary{{ReviewID: "rev-1", Status: "pending"}}, nil
}

func campaignFixture() []ports.CampaignSummary {
	return []ports.CampaignSummary{{
		CampaignID: "camp-1",
		CreatorID:  "creator-1",
		Title:      "Community well",
		Goal:       decimal.RequireFromString("5000.00"),
		Raised:     decimal.RequireFromString("1250.00"),
		Backers:    17,
		Status:     "live",
	}}
}

func TestListCampaignsServesSecondReadFromCache(t *testing.T) {
	reader := &countingCampaignReader{items: campaignFixture()}
	service := Service{
		Campaigns: reader,
		Cache:     memorycache.NewTTLCache(time.Minute),
	}

	first, err := service.ListCampaigns(context.Background())
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	second, err := service.ListCampaigns(context.Background())
	if err != nil {
		t.Fatalf("second read failed: %v", err)
	}

	if reader.calls != 1 {
		t.Fatalf("expected one loader call for two reads, got %d", reader.calls)
	}
	if len(first) != 1 || len(second) != 1 || !second[0].Raised.Equal(first[0].Raised) {
		t.Fatalf("cached read must match the loaded read")
	}
}

func TestInvalidationForcesFreshReadWithinTTL(t *testing.T) {
	reader := &countingCampaignReader{items: campaignFixture()}
	cache := memorycache.NewTTLCache(time.Hour)
	service := Service{Campaigns: reader, Cache: cache}

	if _, err := service.ListCampaigns(context.Background()); err != nil {
		t.Fatalf("warm-up read failed: %v", err)
	}

	// A settlement elsewhere changed the counters and evicted the key.
	reader.items[0].Raised = decimal.RequireFromString("1300.00")
	reader.items[0].Backers = 18
	cache.Invalidate(ports.CacheKeyCampaigns)

	items, err := service.ListCampaigns(context.Background())
	if err != nil {
		t.Fatalf("post-invalidation read failed: %v", err)
	}
	if reader.calls != 2 {
		t.Fatalf("expected reload after invalidation, calls=%d", reader.calls)
	}
	if !items[0].Raised.Equal(decimal.RequireFromString("1300.00")) || items[0].Backers != 18 {
		t.Fatalf("expected fresh counters after invalidation, got %s / %d", items[0].Raised, items[0].Backers)
	}
}

func TestExpiredEntryIsReloaded(t *testing.T) {
	reader := &countingReviewReader{}
	cache := memorycache.NewTTLCache(time.Minute)
	base := time.Date(2026, time.March, 6, 9, 0, 0, 0, time.UTC)
	now := base
	cache.SetNowFunc(func() time.Time { return now })

	service := Service{Reviews: reader, Cache: cache}

	if _, err := service.ListPendingReviews(context.Background()); err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	now = base.Add(2 * time.Minute)
	if _, err := service.ListPendingReviews(context.Background()); err != nil {
		t.Fatalf("post-expiry read failed: %v", err)
	}

	if reader.calls != 2 {
		t.Fatalf("expected reload after expiry, calls=%d", reader.calls)
	}
}

func TestCorruptCacheEntryFallsBackToLoader(t *testing.T) {
	reader := &countingCampaignReader{items: campaignFixture()}
	cache := memorycache.NewTTLCache(time.Minute)
	cache.Put(ports.CacheKeyCampaigns, []byte("{not json"))

	service := Service{Campaigns: reader, Cache: cache}
	items, err := service.ListCampaigns(context.Background())
	if err != nil {
		t.Fatalf("read with corrupt entry failed: %v", err)
	}
	if reader.calls != 1 || len(items) != 1 {
		t.Fatalf("expected loader fallback, calls=%d items=%d", reader.calls, len(items))
	}
}
