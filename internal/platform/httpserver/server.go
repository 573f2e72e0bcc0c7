package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	campaignservice "caritas/contexts/fundraising/campaign-service"
	donationledger "caritas/contexts/fundraising/donation-ledger"
	reviewqueue "caritas/contexts/fundraising/review-queue"
	verificationservice "caritas/contexts/identity-access/verification-service"
	admindashboard "caritas/contexts/internal-ops/admin-dashboard-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "caritas/internal/platform/httpserver/docs"
)

type Server struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	addr         string
	campaigns    campaignservice.Module
	donations    donationledger.Module
	reviews      reviewqueue.Module
	verification verificationservice.Module
	dashboard    admindashboard.Module
}

func New(
	campaigns campaignservice.Module,
	donations donationledger.Module,
	reviews reviewqueue.Module,
	verification verificationservice.Module,
	dashboard admindashboard.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		addr:         addr,
		campaigns:    campaigns,
		donations:    donations,
		reviews:      reviews,
		verification: verification,
		dashboard:    dashboard,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.registerCampaignRoutes()
	s.registerDonationRoutes()
	s.registerReviewRoutes()
	s.registerVerificationRoutes()
	s.registerDashboardRoutes()
}

// requireAdminID enforces the presence of the admin identity header. The
// authenticating gateway in front of this service owns the identity itself.
func requireAdminID(w http.ResponseWriter, r *http.Request) (string, bool) {
	adminID := strings.TrimSpace(r.Header.Get("X-Admin-Id"))
	if adminID == "" {
		writeJSON(w, http.StatusUnauthorized, errorBody{
			Code:    "missing_admin",
			Message: "X-Admin-Id header is required",
		})
		return "", false
	}
	return adminID, true
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
