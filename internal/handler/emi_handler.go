package handler

import (
	"log/slog"
	"net/http"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/service"
)

// EMIHandler serves the loan calculator
type EMIHandler struct {
	emiService service.EMIService
	logger     *slog.Logger
}

// NewEMIHandler creates a new EMI handler
func NewEMIHandler(emiService service.EMIService, logger *slog.Logger) *EMIHandler {
	return &EMIHandler{emiService: emiService, logger: logger}
}

// Calculate handles POST /emi
func (h *EMIHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req service.EMIRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.emiService.Calculate(&req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, result)
}
