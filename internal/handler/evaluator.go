package handler

import (
	"net/http"

	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/service"
)

// EvaluatorHandler handles HTTP requests for credential evaluation.
type EvaluatorHandler struct {
	service *service.EvaluatorService
}

// NewEvaluatorHandler creates a new EvaluatorHandler.
func NewEvaluatorHandler(svc *service.EvaluatorService) *EvaluatorHandler {
	return &EvaluatorHandler{service: svc}
}

// HandleEvaluate handles POST /api/v1/evaluate requests.
func (h *EvaluatorHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req model.EvaluateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Evaluate(req))
}
