package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	verificationerrors "caritas/contexts/identity-access/verification-service/domain/errors"
	verificationhttp "caritas/contexts/identity-access/verification-service/transport/http"
)

func (s *Server) registerVerificationRoutes() {
	s.mux.HandleFunc("POST /v1/admin/profiles/{creator_id}/verification", s.handleSetVerification)
}

func (s *Server) handleSetVerification(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}

	var req verificationhttp.SetVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVerificationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.verification.Handler.SetVerificationHandler(
		r.Context(),
		adminID,
		r.PathValue("creator_id"),
		req,
	)
	if err != nil {
		writeVerificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeVerificationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, verificationerrors.ErrProfileNotFound):
		writeVerificationError(w, http.StatusNotFound, "profile_not_found", err.Error())
	case errors.Is(err, verificationerrors.ErrUnsupportedCheckValue):
		writeVerificationError(w, http.StatusUnprocessableEntity, "unsupported_check", err.Error())
	case errors.Is(err, verificationerrors.ErrInvalidProfileInput):
		writeVerificationError(w, http.StatusBadRequest, "invalid_profile_input", err.Error())
	default:
		writeVerificationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeVerificationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, verificationhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
