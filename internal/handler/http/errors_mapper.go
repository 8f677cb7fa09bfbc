package http

import (
	"errors"
	"net/http"

	"github.com/tkoyuncu/itemkeeper/internal/auth"
	"github.com/tkoyuncu/itemkeeper/internal/logger"
	"github.com/tkoyuncu/itemkeeper/internal/service"
	"github.com/tkoyuncu/itemkeeper/internal/store"
	"github.com/tkoyuncu/itemkeeper/internal/utils"
	"github.com/tkoyuncu/itemkeeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrSelfDeletion:        http.StatusBadRequest,
	store.ErrNothingToUpdate:       http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	auth.ErrTokenInvalid:          http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	service.ErrAccountDisabled:         http.StatusForbidden,
	service.ErrInsufficientPermissions: http.StatusForbidden,

	store.ErrUserNotFound: http.StatusNotFound,
	store.ErrItemNotFound: http.StatusNotFound,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrUsernameAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func codeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusTooManyRequests:
		return "rate_limited"
	default:
		return "internal_error"
	}
}

// writeError maps err to its HTTP status and writes a JSON error body.
// Unmapped errors are logged in full and reported with a generic 500
// message so that internal details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.APIError{Code: codeFromStatus(status), Message: message}, status)
}
