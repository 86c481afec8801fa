package handler

import (
	"net/http"

	"github.com/packwise/api/internal/middleware"
	"github.com/packwise/api/internal/model"
	"github.com/packwise/api/internal/service"
)

// PackingListHandler handles packing list HTTP requests
type PackingListHandler struct {
	svc *service.PackingListService
}

// NewPackingListHandler creates a new packing list handler
func NewPackingListHandler(svc *service.PackingListService) *PackingListHandler {
	return &PackingListHandler{svc: svc}
}

// requireUser pulls the authenticated user from the context
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return "", false
	}
	return userID, true
}

// Create handles POST /v1/packing-lists
func (h *PackingListHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.CreatePackingListRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	list, err := h.svc.CreateList(r.Context(), userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, list)
}

// Get handles GET /v1/packing-lists/{id}
func (h *PackingListHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	list, err := h.svc.GetList(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, list)
}

// List handles GET /v1/packing-lists
func (h *PackingListHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	lists, err := h.svc.ListLists(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, lists)
}

// Update handles PUT /v1/packing-lists/{id}
func (h *PackingListHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.UpdatePackingListRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	list, err := h.svc.UpdateList(r.Context(), r.PathValue("id"), userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, list)
}

// Delete handles DELETE /v1/packing-lists/{id}
func (h *PackingListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteList(r.Context(), r.PathValue("id"), userID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// Items sub-resource

// GetItems handles GET /v1/packing-lists/{id}/items
func (h *PackingListHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.GetItems(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, entries)
}

// AddItems handles POST /v1/packing-lists/{id}/items
func (h *PackingListHandler) AddItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.ListItemsRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	entries, err := h.svc.AddItems(r.Context(), r.PathValue("id"), userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusCreated, entries)
}

// ReplaceItems handles PUT /v1/packing-lists/{id}/items
func (h *PackingListHandler) ReplaceItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.ListItemsRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	entries, err := h.svc.ReplaceItems(r.Context(), r.PathValue("id"), userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, entries)
}

// UpdateItem handles PATCH /v1/packing-lists/{id}/items/{entryId}
func (h *PackingListHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity *int  `json:"quantity,omitempty"`
		Packed   *bool `json:"packed,omitempty"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	entry, err := h.svc.UpdateItem(r.Context(), r.PathValue("id"), r.PathValue("entryId"), userID, req.Quantity, req.Packed)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, entry)
}

// DeleteItem handles DELETE /v1/packing-lists/{id}/items/{entryId}
func (h *PackingListHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(r.Context(), r.PathValue("id"), r.PathValue("entryId"), userID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
