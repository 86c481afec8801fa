package handler

import (
	"net/http"

	"github.com/packwise/api/internal/model"
	"github.com/packwise/api/internal/service"
)

// CurrencyHandler handles currency conversion HTTP requests
type CurrencyHandler struct {
	svc *service.CurrencyService
}

// NewCurrencyHandler creates a new currency handler
func NewCurrencyHandler(svc *service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{svc: svc}
}

// Convert handles GET /v1/currency/convert?from=USD&to=EUR
func (h *CurrencyHandler) Convert(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		WriteError(w, model.NewBadRequestError("from and to query parameters are required"))
		return
	}

	rate, err := h.svc.Convert(r.Context(), from, to)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, rate)
}
