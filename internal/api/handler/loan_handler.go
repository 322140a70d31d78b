package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/NextAI-Gen/Credit-approval-system/internal/api/handler/dto"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/lending"
	"github.com/NextAI-Gen/Credit-approval-system/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type LoanHandler struct {
	service lending.LendingService
	logger  *slog.Logger
}

func NewLoanHandler(s lending.LendingService, l *slog.Logger) *LoanHandler {
	if s == nil {
		panic("lending service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &LoanHandler{
		service: s,
		logger:  l.With("component", "LoanHandler"),
	}
}

func idFromURL(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	if idStr == "" {
		return 0, fmt.Errorf("%w: %s not found in URL path", apperrors.ErrInvalidArgument, param)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s format in URL path: %s", apperrors.ErrInvalidArgument, param, idStr)
	}
	return id, nil
}

func (h *LoanHandler) decodeApplication(w http.ResponseWriter, r *http.Request) (*dto.LoanApplicationRequest, bool) {
	var req dto.LoanApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return nil, false
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Loan application validation failed", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return nil, false
	}
	return &req, true
}

// CheckEligibility handles POST /check-eligibility.
func (h *LoanHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received eligibility check request")

	req, ok := h.decodeApplication(w, r)
	if !ok {
		return
	}

	decision, err := h.service.CheckEligibility(r.Context(), req.CustomerID, req.LoanAmount, req.InterestRate, req.Tenure)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to check eligibility", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewCheckEligibilityResponse(req.CustomerID, req.Tenure, decision)
	h.logger.InfoContext(r.Context(), "Eligibility check completed",
		slog.Int64("customerID", req.CustomerID), slog.Bool("approval", resp.Approval))
	respondJSON(w, http.StatusOK, resp)
}

// CreateLoan handles POST /create-loan. A denied application still returns
// 200 with loan_approved=false and a null loan_id.
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create loan request")

	req, ok := h.decodeApplication(w, r)
	if !ok {
		return
	}

	result, err := h.service.CreateLoan(r.Context(), req.CustomerID, req.LoanAmount, req.InterestRate, req.Tenure)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to process loan application", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewCreateLoanResponse(req.CustomerID, result)
	status := http.StatusOK
	if resp.LoanApproved {
		status = http.StatusCreated
	}
	h.logger.InfoContext(r.Context(), "Loan application processed",
		slog.Int64("customerID", req.CustomerID), slog.Bool("loanApproved", resp.LoanApproved))
	respondJSON(w, status, resp)
}

// GetLoan handles GET /view-loan/{loanID}.
func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	loanID, err := idFromURL(r, "loanID")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get loan ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	detail, err := h.service.GetLoan(r.Context(), loanID)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to get loan", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Loan retrieved successfully", slog.Int64("loanID", loanID))
	respondJSON(w, http.StatusOK, dto.NewViewLoanResponse(detail))
}

// ListByCustomer handles GET /view-loans/{customerID}. An unknown customer
// yields an empty list, matching the listing semantics of a filter query.
func (h *LoanHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := idFromURL(r, "customerID")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	loans, err := h.service.ListLoansByCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list loans", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Loans listed successfully",
		slog.Int64("customerID", customerID), slog.Int("count", len(loans)))
	respondJSON(w, http.StatusOK, dto.NewLoanListResponse(loans))
}
