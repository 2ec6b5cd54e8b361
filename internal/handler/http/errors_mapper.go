package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-records-sync/internal/service"
	"github.com/MKhiriev/go-records-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrEmptyCollection:         http.StatusBadRequest,
	service.ErrUnknownCollection:       http.StatusBadRequest,
	service.ErrInvalidOperation:        http.StatusBadRequest,
	service.ErrInvalidPayload:          http.StatusBadRequest,
	service.ErrInvalidOffset:           http.StatusBadRequest,
	service.ErrEmptyTenantID:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,

	store.ErrEntityNotFound: http.StatusNotFound,
	store.ErrInvalidChange:  http.StatusBadRequest,
	store.ErrInvalidEntity:  http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
