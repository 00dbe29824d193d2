package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/calebmori/opsdesk/internal/service"
)

type FinancialHandler struct {
	svc *service.FinancialService
}

func NewFinancialHandler(svc *service.FinancialService) *FinancialHandler {
	return &FinancialHandler{svc: svc}
}

type financialRequest struct {
	OperationType string  `json:"operation_type"`
	Amount        float64 `json:"amount,omitempty"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category,omitempty"`
}

func (h *FinancialHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req financialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Process(r.Context(), service.FinancialRequest{
		OperationType: req.OperationType,
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
	})
	if err != nil {
		if errors.Is(err, service.ErrOperationTypeMissing) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to process financial operation")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
