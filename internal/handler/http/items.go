package http

import (
	"encoding/json"
	"net/http"

	"github.com/tkoyuncu/itemkeeper/internal/logger"
	"github.com/tkoyuncu/itemkeeper/internal/utils"
	"github.com/tkoyuncu/itemkeeper/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	limit, offset, err := parsePagination(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	includeOwner := r.URL.Query().Get("include_owner") == "true"

	items, err := h.services.ItemsService.ListItems(r.Context(), principal, limit, offset, includeOwner)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// listMyItems returns the authenticated principal's own items.
func (h *Handler) listMyItems(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	limit, offset, err := parsePagination(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.services.ItemsService.ListMyItems(r.Context(), principal, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "itemID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemsService.GetItem(r.Context(), principal, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var create models.ItemCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ItemsService.CreateItem(r.Context(), principal, create)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "itemID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ItemsService.UpdateItem(r.Context(), principal, id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "itemID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.ItemsService.DeleteItem(r.Context(), principal, id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Message{Message: "item deleted"}, http.StatusOK)
}
