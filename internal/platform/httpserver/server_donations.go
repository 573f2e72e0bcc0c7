package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	donationerrors "caritas/contexts/fundraising/donation-ledger/domain/errors"
	donationhttp "caritas/contexts/fundraising/donation-ledger/transport/http"
)

func (s *Server) registerDonationRoutes() {
	s.mux.HandleFunc("POST /v1/campaigns/{campaign_id}/donations", s.handleRecordDonation)
	s.mux.HandleFunc("GET /v1/donations/{reference_code}", s.handleGetDonationByReference)

	s.mux.HandleFunc("GET /v1/admin/donations", s.handleListDonations)
	s.mux.HandleFunc("POST /v1/admin/donations/{donation_id}/approve", s.handleApproveDonation)
	s.mux.HandleFunc("POST /v1/admin/donations/{donation_id}/fail", s.handleFailDonation)
}

func (s *Server) handleRecordDonation(w http.ResponseWriter, r *http.Request) {
	var req donationhttp.RecordDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDonationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.donations.Handler.RecordDonationHandler(r.Context(), r.PathValue("campaign_id"), req)
	if err != nil {
		writeDonationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetDonationByReference(w http.ResponseWriter, r *http.Request) {
	resp, err := s.donations.Handler.GetDonationByReferenceHandler(r.Context(), r.PathValue("reference_code"))
	if err != nil {
		writeDonationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListDonations(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdminID(w, r); !ok {
		return
	}

	query := r.URL.Query()
	resp, err := s.donations.Handler.ListDonationsHandler(
		r.Context(),
		query.Get("campaign_id"),
		query.Get("status"),
	)
	if err != nil {
		writeDonationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApproveDonation(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}

	resp, err := s.donations.Handler.ApproveDonationHandler(r.Context(), adminID, r.PathValue("donation_id"))
	if err != nil {
		writeDonationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFailDonation(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}

	resp, err := s.donations.Handler.FailDonationHandler(r.Context(), adminID, r.PathValue("donation_id"))
	if err != nil {
		writeDonationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeDonationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, donationerrors.ErrDonationNotFound):
		writeDonationError(w, http.StatusNotFound, "donation_not_found", err.Error())
	case errors.Is(err, donationerrors.ErrCampaignNotFound):
		writeDonationError(w, http.StatusNotFound, "campaign_not_found", err.Error())
	case errors.Is(err, donationerrors.ErrCampaignFullyFunded):
		writeDonationError(w, http.StatusConflict, "campaign_fully_funded", err.Error())
	case errors.Is(err, donationerrors.ErrDonationAlreadySettled):
		writeDonationError(w, http.StatusConflict, "donation_already_settled", err.Error())
	case errors.Is(err, donationerrors.ErrDonationAlreadyFailed):
		writeDonationError(w, http.StatusConflict, "donation_already_failed", err.Error())
	case errors.Is(err, donationerrors.ErrReferenceCodeTaken):
		writeDonationError(w, http.StatusConflict, "reference_code_taken", err.Error())
	case errors.Is(err, donationerrors.ErrInvalidDonationInput):
		writeDonationError(w, http.StatusBadRequest, "invalid_donation_input", err.Error())
	default:
		writeDonationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeDonationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, donationhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
