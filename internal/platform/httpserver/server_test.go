package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	campaignservice "caritas/contexts/fundraising/campaign-service"
	campaignentities "caritas/contexts/fundraising/campaign-service/domain/entities"
	donationledger "caritas/contexts/fundraising/donation-ledger"
	donationmemory "caritas/contexts/fundraising/donation-ledger/adapters/memory"
	donationhttp "caritas/contexts/fundraising/donation-ledger/transport/http"
	reviewqueue "caritas/contexts/fundraising/review-queue"
	reviewentities "caritas/contexts/fundraising/review-queue/domain/entities"
	reviewports "caritas/contexts/fundraising/review-queue/ports"
	verificationservice "caritas/contexts/identity-access/verification-service"
	verificationentities "caritas/contexts/identity-access/verification-service/domain/entities"
	admindashboard "caritas/contexts/internal-ops/admin-dashboard-service"
	"caritas/contexts/internal-ops/admin-dashboard-service/adapters/memorycache"
	dashboardports "caritas/contexts/internal-ops/admin-dashboard-service/ports"
	dashboardhttp "caritas/contexts/internal-ops/admin-dashboard-service/transport/http"
)

type stubVerification struct {
	state reviewports.VerificationState
}

func (s stubVerification) VerificationState(_ context.Context, _ string) (reviewports.VerificationState, error) {
	return s.state, nil
}

func (s stubVerification) EnsureMaySubmit(_ context.Context, _ string) error {
	return nil
}

type stubCampaignReader struct{}

func (stubCampaignReader) ListCampaignSummaries(_ context.Context) ([]dashboardports.CampaignSummary, error) {
	return []dashboardports.CampaignSummary{{
		CampaignID: "camp-1",
		CreatorID:  "creator-1",
		Title:      "Community well",
		Goal:       decimal.RequireFromString("5000.00"),
		Raised:     decimal.RequireFromString("1250.00"),
		Backers:    17,
		Status:     "live",
		CreatedAt:  time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
	}}, nil
}

type stubReviewReader struct{}

func (stubReviewReader) ListPendingReviewSummaries(_ context.Context) ([]dashboardports.ReviewSummary, error) {
	return nil, nil
}

type stubDonationReader struct{}

func (stubDonationReader) ListDonationSummaries(_ context.Context) ([]dashboardports.DonationSummary, error) {
	return nil, nil
}

type stubProfileReader struct{}

func (stubProfileReader) ListProfileSummaries(_ context.Context) ([]dashboardports.ProfileSummary, error) {
	return nil, nil
}

func newTestServer(t *testing.T, gate reviewports.VerificationReader) *Server {
	t.Helper()
	cache := memorycache.NewTTLCache(time.Minute)

	campaigns := campaignservice.NewInMemoryModule([]campaignentities.Campaign{{
		CampaignID: "camp-1",
		CreatorID:  "creator-1",
		Title:      "Community well",
		Goal:       decimal.RequireFromString("5000.00"),
		Status:     campaignentities.CampaignStatusLive,
	}}, cache, nil)
	donations := donationledger.NewInMemoryModule([]donationmemory.CampaignFinance{{
		CampaignID: "camp-1",
		Goal:       decimal.RequireFromString("5000.00"),
	}}, cache, nil)
	reviews := reviewqueue.NewInMemoryModule([]reviewentities.CampaignReview{{
		ReviewID:    "rev-1",
		CreatorID:   "creator-1",
		Title:       "Community well",
		Description: "Clean water for the village",
		Category:    "infrastructure",
		Goal:        decimal.RequireFromString("5000.00"),
		Status:      reviewentities.ReviewStatusPending,
		SubmittedAt: time.Date(2026, time.February, 20, 8, 0, 0, 0, time.UTC),
	}}, gate, cache, nil)
	verification := verificationservice.NewInMemoryModule([]verificationentities.CreatorProfile{{
		CreatorID: "creator-1",
		Phone:     "+31612345678",
	}}, cache, nil)
	dashboard := admindashboard.NewModule(admindashboard.Dependencies{
		Campaigns: stubCampaignReader{},
		Reviews:   stubReviewReader{},
		Donations: stubDonationReader{},
		Profiles:  stubProfileReader{},
		Cache:     cache,
	})

	return New(campaigns, donations, reviews, verification, dashboard, nil, ":0")
}

func TestAdminRoutesRejectMissingAdminHeader(t *testing.T) {
	server := newTestServer(t, stubVerification{})

	for _, target := range []string{
		"/v1/admin/donations",
		"/v1/admin/reviews",
		"/v1/admin/dashboard/campaigns",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without X-Admin-Id, got %d", target, rec.Code)
		}
		var body errorBody
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decode error body: %v", target, err)
		}
		if body.Code != "missing_admin" {
			t.Fatalf("%s: expected missing_admin code, got %q", target, body.Code)
		}
	}
}

func TestRecordDonationSettlesCardPayment(t *testing.T) {
	server := newTestServer(t, stubVerification{})

	payload := `{"amount":"40.00","donor_name":"Sam Donor","method":"card"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/camp-1/donations", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp donationhttp.RecordDonationResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Donation.Status != "completed" {
		t.Fatalf("card payment must settle immediately, got %q", resp.Donation.Status)
	}
	if resp.Donation.ReferenceCode == "" {
		t.Fatalf("expected a generated reference code")
	}
}

func TestSubmitReviewRequiresUserHeader(t *testing.T) {
	server := newTestServer(t, stubVerification{})

	req := httptest.NewRequest(http.MethodPost, "/v1/reviews", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without X-User-Id, got %d", rec.Code)
	}
}

func TestApproveReviewReportsIncompleteVerification(t *testing.T) {
	server := newTestServer(t, stubVerification{
		state: reviewports.VerificationState{PhoneVerified: true},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/reviews/rev-1/approve", nil)
	req.Header.Set("X-Admin-Id", "admin-1")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for incomplete verification, got %d: %s", rec.Code, rec.Body.String())
	}
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Code != "verification_incomplete" {
		t.Fatalf("expected verification_incomplete code, got %q", body.Code)
	}
	if !strings.Contains(body.Message, "identity") || !strings.Contains(body.Message, "address") {
		t.Fatalf("expected every failing check in the message, got %q", body.Message)
	}
}

func TestDashboardCampaignsServesSummaries(t *testing.T) {
	server := newTestServer(t, stubVerification{})

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard/campaigns", nil)
	req.Header.Set("X-Admin-Id", "admin-1")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp dashboardhttp.ListCampaignSummariesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Raised != "1250.00" {
		t.Fatalf("unexpected dashboard payload %+v", resp.Items)
	}
}
