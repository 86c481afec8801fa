package handler

import (
	"net/http"

	"github.com/packwise/api/internal/model"
	"github.com/packwise/api/internal/service"
)

// ConditionHandler handles condition HTTP requests
type ConditionHandler struct {
	svc *service.ConditionService
}

// NewConditionHandler creates a new condition handler
func NewConditionHandler(svc *service.ConditionService) *ConditionHandler {
	return &ConditionHandler{svc: svc}
}

// Create handles POST /v1/conditions
func (h *ConditionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTagRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	condition, err := h.svc.CreateCondition(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, condition)
}

// Get handles GET /v1/conditions/{id}
func (h *ConditionHandler) Get(w http.ResponseWriter, r *http.Request) {
	condition, err := h.svc.GetCondition(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, condition)
}

// List handles GET /v1/conditions
func (h *ConditionHandler) List(w http.ResponseWriter, r *http.Request) {
	conditions, err := h.svc.ListConditions(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, conditions)
}

// Update handles PUT /v1/conditions/{id}
func (h *ConditionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateTagRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	condition, err := h.svc.UpdateCondition(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, condition)
}

// Delete handles DELETE /v1/conditions/{id}
func (h *ConditionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCondition(r.Context(), r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
