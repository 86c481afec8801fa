package handler

import (
	"net/http"

	"github.com/packwise/api/internal/middleware"
	"github.com/packwise/api/internal/model"
	"github.com/packwise/api/internal/service"
)

// ItemHandler handles catalog item HTTP requests
type ItemHandler struct {
	svc         *service.ItemService
	suggestions *service.SuggestionService
}

// NewItemHandler creates a new item handler
func NewItemHandler(svc *service.ItemService, suggestions *service.SuggestionService) *ItemHandler {
	return &ItemHandler{svc: svc, suggestions: suggestions}
}

// Create handles POST /v1/items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	item, err := h.svc.CreateItem(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, item)
}

// Get handles GET /v1/items/{id}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, item)
}

// List handles GET /v1/items
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, items)
}

// Update handles PUT /v1/items/{id}
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, item)
}

// Delete handles DELETE /v1/items/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteItem(r.Context(), r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// Suggestions handles GET /v1/items/conditions/{condition}.
// The route is open to anonymous callers; an authenticated caller also
// gets their favorites group populated.
func (h *ItemHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	suggestions, err := h.suggestions.GetSuggestions(ctx, r.PathValue("condition"), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, suggestions)
}
