package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	reviewerrors "caritas/contexts/fundraising/review-queue/domain/errors"
	reviewhttp "caritas/contexts/fundraising/review-queue/transport/http"
	verificationerrors "caritas/contexts/identity-access/verification-service/domain/errors"
)

func (s *Server) registerReviewRoutes() {
	s.mux.HandleFunc("POST /v1/reviews", s.handleSubmitReview)
	s.mux.HandleFunc("GET /v1/reviews/{review_id}", s.handleGetReview)

	s.mux.HandleFunc("GET /v1/admin/reviews", s.handleListReviews)
	s.mux.HandleFunc("POST /v1/admin/reviews/{review_id}/approve", s.handleApproveReview)
	s.mux.HandleFunc("POST /v1/admin/reviews/{review_id}/reject", s.handleRejectReview)
}

func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	creatorID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if creatorID == "" {
		writeReviewError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req reviewhttp.SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReviewError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	req.CreatorID = creatorID

	resp, err := s.reviews.Handler.SubmitReviewHandler(r.Context(), req)
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetReview(w http.ResponseWriter, r *http.Request) {
	resp, err := s.reviews.Handler.GetReviewHandler(r.Context(), r.PathValue("review_id"))
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdminID(w, r); !ok {
		return
	}

	query := r.URL.Query()
	resp, err := s.reviews.Handler.ListReviewsHandler(
		r.Context(),
		query.Get("creator_id"),
		query.Get("pending_only") != "false",
	)
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApproveReview(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}

	resp, err := s.reviews.Handler.ApproveReviewHandler(r.Context(), adminID, r.PathValue("review_id"))
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRejectReview(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}

	if err := s.reviews.Handler.RejectReviewHandler(r.Context(), adminID, r.PathValue("review_id")); err != nil {
		writeReviewDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeReviewDomainError(w http.ResponseWriter, err error) {
	var incomplete *reviewerrors.VerificationIncompleteError
	switch {
	case errors.As(err, &incomplete):
		writeReviewError(w, http.StatusForbidden, "verification_incomplete", incomplete.Error())
	case errors.Is(err, reviewerrors.ErrReviewNotFound):
		writeReviewError(w, http.StatusNotFound, "review_not_found", err.Error())
	case errors.Is(err, reviewerrors.ErrReviewNotPending):
		writeReviewError(w, http.StatusConflict, "review_not_pending", err.Error())
	case errors.Is(err, reviewerrors.ErrInvalidReviewInput):
		writeReviewError(w, http.StatusBadRequest, "invalid_review_input", err.Error())
	case errors.Is(err, verificationerrors.ErrCreatorNotEligible):
		writeReviewError(w, http.StatusForbidden, "creator_not_eligible", err.Error())
	case errors.Is(err, verificationerrors.ErrProfileNotFound):
		writeReviewError(w, http.StatusNotFound, "profile_not_found", err.Error())
	default:
		writeReviewError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeReviewError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, reviewhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
