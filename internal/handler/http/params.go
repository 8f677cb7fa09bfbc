package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tkoyuncu/itemkeeper/internal/logger"
	"github.com/tkoyuncu/itemkeeper/internal/service"
	"github.com/tkoyuncu/itemkeeper/internal/utils"
	"github.com/tkoyuncu/itemkeeper/models"
)

// Pagination defaults applied when the query string omits limit or offset.
// Requested limits above maxPageLimit are clamped so a single request cannot
// pull the whole table.
const (
	defaultPageLimit  = 100
	defaultPageOffset = 0
	maxPageLimit      = 1000
)

// principalFromRequest retrieves the authenticated principal stored by the
// auth middleware. A missing principal means the handler was reached without
// the middleware, which is a wiring bug; the request is rejected with 401.
func principalFromRequest(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no principal in authenticated request context")
		writeError(w, r, ErrEmptyAuthorizationHeader)
		return models.User{}, false
	}

	return principal, true
}

// parsePagination reads limit and offset from the query string, applying the
// defaults when absent and capping the limit. Non-numeric values are rejected.
func parsePagination(r *http.Request) (limit, offset uint64, err error) {
	limit = defaultPageLimit
	offset = defaultPageOffset

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: limit must be a non-negative integer", service.ErrInvalidDataProvided)
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: offset must be a non-negative integer", service.ErrInvalidDataProvided)
		}
	}

	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return limit, offset, nil
}

// parseIDParam reads a positive integer URL parameter registered under name.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", service.ErrInvalidDataProvided, name)
	}

	return id, nil
}
