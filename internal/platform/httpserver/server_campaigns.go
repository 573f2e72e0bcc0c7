package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	campaignerrors "caritas/contexts/fundraising/campaign-service/domain/errors"
	campaignhttp "caritas/contexts/fundraising/campaign-service/transport/http"
)

func (s *Server) registerCampaignRoutes() {
	s.mux.HandleFunc("GET /v1/campaigns", s.handleListCampaigns)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_id}", s.handleGetCampaign)

	s.mux.HandleFunc("POST /v1/admin/campaigns", s.handleCreateCampaign)
	s.mux.HandleFunc("PATCH /v1/admin/campaigns/{campaign_id}", s.handleUpdateCampaignText)
	s.mux.HandleFunc("POST /v1/admin/campaigns/{campaign_id}/hold", s.handleSetCampaignHold)
	s.mux.HandleFunc("DELETE /v1/admin/campaigns/{campaign_id}", s.handleDeleteCampaign)
}

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	// Public listing hides held and pending campaigns; admins see everything.
	publicOnly := strings.TrimSpace(r.Header.Get("X-Admin-Id")) == ""

	resp, err := s.campaigns.Handler.ListCampaignsHandler(
		r.Context(),
		query.Get("creator_id"),
		query.Get("status"),
		publicOnly,
	)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.GetCampaignHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}

	var req campaignhttp.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.campaigns.Handler.CreateCampaignHandler(r.Context(), adminID, req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateCampaignText(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}

	var req campaignhttp.UpdateTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	if err := s.campaigns.Handler.UpdateTextHandler(r.Context(), adminID, r.PathValue("campaign_id"), req); err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetCampaignHold(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}

	var req campaignhttp.SetHoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	if err := s.campaigns.Handler.SetHoldHandler(r.Context(), adminID, r.PathValue("campaign_id"), req); err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}

	if err := s.campaigns.Handler.DeleteCampaignHandler(r.Context(), adminID, r.PathValue("campaign_id")); err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeCampaignDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaignerrors.ErrCampaignNotFound):
		writeCampaignError(w, http.StatusNotFound, "campaign_not_found", err.Error())
	case errors.Is(err, campaignerrors.ErrInvalidCampaignInput):
		writeCampaignError(w, http.StatusBadRequest, "invalid_campaign_input", err.Error())
	case errors.Is(err, campaignerrors.ErrCampaignNotPublished):
		writeCampaignError(w, http.StatusConflict, "campaign_not_published", err.Error())
	default:
		writeCampaignError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCampaignError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, campaignhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
