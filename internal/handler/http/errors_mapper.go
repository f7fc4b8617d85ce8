package http

import (
	"errors"
	"net/http"

	"github.com/mirrorlake/docsync/internal/service"
	"github.com/mirrorlake/docsync/internal/store"
	"github.com/mirrorlake/docsync/models"
)

var errorStatusMap = map[error]int{
	service.ErrPushConflict:          http.StatusConflict,
	service.ErrNoDocumentsProvided:   http.StatusBadRequest,
	service.ErrInvalidPullCheckpoint: http.StatusBadRequest,
	service.ErrUnknownCollection:     http.StatusNotFound,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	models.ErrMissingField: http.StatusBadRequest,

	store.ErrRevisionConflict: http.StatusConflict,
	store.ErrDocumentNotFound: http.StatusNotFound,
	store.ErrDocumentNotSaved: http.StatusInternalServerError,
	store.ErrMetaNotFound:     http.StatusNotFound,

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
