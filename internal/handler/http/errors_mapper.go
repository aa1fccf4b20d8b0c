package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-import/internal/converter"
	"github.com/MKhiriev/go-pass-import/internal/service"
	"github.com/MKhiriev/go-pass-import/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyBody:         http.StatusBadRequest,
	ErrInvalidSkipShared: http.StatusBadRequest,
	ErrReadingBody:       http.StatusBadRequest,

	service.ErrConvertInput:            http.StatusBadRequest,
	service.ErrUnableToCreateTags:      http.StatusBadGateway,
	service.ErrUnableToCreateFolders:   http.StatusBadGateway,
	service.ErrUnableToCreatePasswords: http.StatusBadGateway,

	converter.ErrUnsupportedImportType: http.StatusBadRequest,
	converter.ErrMalformedInput:        http.StatusBadRequest,
	converter.ErrEmptyInput:            http.StatusBadRequest,
}

func statusFromError(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// statusFromResult maps a finished import run to the response status.
// Completed runs answer 200 even when single records failed.
func statusFromResult(result models.ImportResult) int {
	if result.OK() {
		return http.StatusOK
	}
	return statusFromError(result.Err())
}
