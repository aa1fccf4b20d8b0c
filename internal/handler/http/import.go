package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/internal/utils"
	"github.com/MKhiriev/go-pass-import/models"
)

// importResponse is the body of POST /api/import.
type importResponse struct {
	models.ImportOutcome

	// Error and FailedPhase are set when a whole phase failed.
	Error       string             `json:"error,omitempty"`
	FailedPhase models.ImportPhase `json:"failed_phase,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	inputType, opts, err := h.importParams(r, log)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if !errors.As(err, &maxBytesErr) {
			err = fmt.Errorf("%w: %w", ErrReadingBody, err)
		}
		h.writeError(w, r, err)
		return
	}
	if len(raw) == 0 {
		h.writeError(w, r, ErrEmptyBody)
		return
	}

	ctx := r.Context()
	if h.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.RequestTimeout)
		defer cancel()
	}

	result := h.services.ImportService.Import(ctx, raw, inputType, opts, func(processed, total int, status string) {
		if status != "" {
			log.Debug().Int("processed", processed).Int("total", total).Str("status", status).Msg("import progress")
		}
	})

	resp := importResponse{ImportOutcome: result.Outcome}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	if !result.OK() {
		resp.Error = result.Err().Error()
		resp.FailedPhase = result.FailedPhase
	}

	if _, err = utils.WriteJSON(w, resp, statusFromResult(result)); err != nil {
		log.Err(err).Msg("error writing import response")
	}
}

// importParams reads the query parameters of an import request, falling
// back to the configured defaults.
func (h *Handler) importParams(r *http.Request, log *logger.Logger) (string, models.ImportOptions, error) {
	query := r.URL.Query()

	inputType := query.Get("type")
	if inputType == "" {
		inputType = h.defaults.InputType
	}

	rawMode := query.Get("mode")
	if rawMode == "" {
		rawMode = h.defaults.Mode
	}
	mode, err := models.ParseConflictMode(rawMode)
	if err != nil {
		// ParseConflictMode already returned the fallback mode.
		log.Warn().Err(err).Str("mode", rawMode).Msg("unknown conflict mode, creating new records instead")
	}

	skipShared := !h.defaults.IncludeShared
	if raw := query.Get("skipShared"); raw != "" {
		if skipShared, err = strconv.ParseBool(raw); err != nil {
			return "", models.ImportOptions{}, fmt.Errorf("%w: %q", ErrInvalidSkipShared, raw)
		}
	}

	return inputType, models.ImportOptions{Mode: mode, SkipShared: skipShared}, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg("import request rejected")

	if _, werr := utils.WriteJSON(w, errorResponse{Error: err.Error()}, status); werr != nil {
		logger.FromRequest(r).Err(werr).Msg("error writing error response")
	}
}
