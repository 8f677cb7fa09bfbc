package http

import (
	"encoding/json"
	"net/http"

	"github.com/tkoyuncu/itemkeeper/internal/logger"
	"github.com/tkoyuncu/itemkeeper/internal/utils"
	"github.com/tkoyuncu/itemkeeper/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	limit, offset, err := parsePagination(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	users, err := h.services.UsersService.ListUsers(r.Context(), principal, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// getMe returns the authenticated principal's own account.
func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	utils.WriteJSON(w, principal, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UsersService.GetUser(r.Context(), principal, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var create models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.UsersService.CreateUser(r.Context(), principal, create)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.UsersService.UpdateUser(r.Context(), principal, id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UsersService.DeleteUser(r.Context(), principal, id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Message{Message: "user deleted"}, http.StatusOK)
}
