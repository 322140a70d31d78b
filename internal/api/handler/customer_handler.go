package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NextAI-Gen/Credit-approval-system/internal/api/handler/dto"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/customer"
	"github.com/NextAI-Gen/Credit-approval-system/internal/pkg/apperrors"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

// Register handles POST /register.
func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received register customer request")

	var req dto.RegisterCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Register request validation failed", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	registered, err := h.service.RegisterCustomer(r.Context(), req.FirstName, req.LastName, req.Age, req.PhoneNumber, req.MonthlyIncome)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to register customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewRegisterCustomerResponse(registered)
	h.logger.InfoContext(r.Context(), "Customer registered successfully", slog.Int64("customerID", resp.CustomerID))
	respondJSON(w, http.StatusCreated, resp)
}
