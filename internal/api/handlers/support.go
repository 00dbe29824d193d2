package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/calebmori/opsdesk/internal/service"
)

type SupportHandler struct {
	svc *service.SupportService
}

func NewSupportHandler(svc *service.SupportService) *SupportHandler {
	return &SupportHandler{svc: svc}
}

type supportRequest struct {
	CustomerID  string `json:"customer_id"`
	IssueType   string `json:"issue_type"`
	Priority    string `json:"priority,omitempty"`
	Description string `json:"description"`
}

func (h *SupportHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req supportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ticket, err := h.svc.ProcessTicket(r.Context(), service.SupportRequest{
		CustomerID:  req.CustomerID,
		IssueType:   req.IssueType,
		Priority:    req.Priority,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerIDMissing),
			errors.Is(err, service.ErrIssueTypeMissing),
			errors.Is(err, service.ErrDescriptionMissing):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to process support ticket")
		}
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}
