package httpserver

import (
	"net/http"

	dashboardhttp "caritas/contexts/internal-ops/admin-dashboard-service/transport/http"
)

func (s *Server) registerDashboardRoutes() {
	s.mux.HandleFunc("GET /v1/admin/dashboard/campaigns", s.handleDashboardCampaigns)
	s.mux.HandleFunc("GET /v1/admin/dashboard/reviews", s.handleDashboardReviews)
	s.mux.HandleFunc("GET /v1/admin/dashboard/donations", s.handleDashboardDonations)
	s.mux.HandleFunc("GET /v1/admin/dashboard/profiles", s.handleDashboardProfiles)
}

func (s *Server) handleDashboardCampaigns(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdminID(w, r); !ok {
		return
	}
	resp, err := s.dashboard.Handler.ListCampaignsHandler(r.Context())
	if err != nil {
		writeDashboardError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDashboardReviews(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdminID(w, r); !ok {
		return
	}
	resp, err := s.dashboard.Handler.ListPendingReviewsHandler(r.Context())
	if err != nil {
		writeDashboardError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDashboardDonations(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdminID(w, r); !ok {
		return
	}
	resp, err := s.dashboard.Handler.ListDonationsHandler(r.Context())
	if err != nil {
		writeDashboardError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDashboardProfiles(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdminID(w, r); !ok {
		return
	}
	resp, err := s.dashboard.Handler.ListProfilesHandler(r.Context())
	if err != nil {
		writeDashboardError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeDashboardError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, dashboardhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
