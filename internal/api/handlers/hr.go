package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/calebmori/opsdesk/internal/service"
)

type HRHandler struct {
	svc *service.HRService
}

func NewHRHandler(svc *service.HRService) *HRHandler {
	return &HRHandler{svc: svc}
}

type hrRequest struct {
	OperationType string `json:"operation_type"`
	EmployeeID    string `json:"employee_id,omitempty"`
	Position      string `json:"position,omitempty"`
	Department    string `json:"department,omitempty"`
}

func (h *HRHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req hrRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Process(r.Context(), service.HRRequest{
		OperationType: req.OperationType,
		EmployeeID:    req.EmployeeID,
		Position:      req.Position,
		Department:    req.Department,
	})
	if err != nil {
		if errors.Is(err, service.ErrOperationTypeMissing) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to process hr operation")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
