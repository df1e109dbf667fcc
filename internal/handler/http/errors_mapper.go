package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-posts/internal/service"
	"github.com/MKhiriev/go-user-posts/internal/store"
	"github.com/MKhiriev/go-user-posts/internal/utils"
	"github.com/MKhiriev/go-user-posts/internal/validators"
	"golang.org/x/crypto/bcrypt"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                      http.StatusBadRequest,
	ErrBodyTooLarge:                     http.StatusRequestEntityTooLarge,
	context.DeadlineExceeded:            http.StatusGatewayTimeout,

	validators.ErrValidation:      http.StatusBadRequest,
	validators.ErrInvalidUsername: http.StatusBadRequest,
	bcrypt.ErrPasswordTooLong:     http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrInactiveUser:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrSearchTooShort:          http.StatusBadRequest,
	service.ErrInvalidUserFilter:       http.StatusBadRequest,
	service.ErrNoFieldsToUpdate:        http.StatusBadRequest,
	service.ErrInvalidUserType:         http.StatusBadRequest,
	service.ErrInvalidStatus:           http.StatusBadRequest,
	service.ErrInvalidIsPublished:      http.StatusBadRequest,

	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrPostNotFound:          http.StatusNotFound,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrTitleAlreadyExists:    http.StatusConflict,
	store.ErrValueTooLong:          http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
