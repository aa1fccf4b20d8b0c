package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-import/internal/converter"
	"github.com/MKhiriev/go-pass-import/internal/service"
	"github.com/MKhiriev/go-pass-import/models"
)

func postImport(t *testing.T, router http.Handler, query string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/import"+query, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeImportResponse(t *testing.T, rec *httptest.ResponseRecorder) importResponse {
	t.Helper()
	var resp importResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestImportFile_Completed(t *testing.T) {
	imports := &stubImportService{result: models.Completed(models.ImportOutcome{
		Processed: 2,
		Total:     2,
		TagIDs:    map[string]string{"a": "b"},
	})}
	router := newTestRouter(t, imports)

	rec := postImport(t, router, "", []byte(`{"tags":[]}`), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeImportResponse(t, rec)
	assert.Equal(t, 2, resp.Processed)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, []string{}, resp.Errors)
	assert.Equal(t, map[string]string{"a": "b"}, resp.TagIDs)
	assert.Empty(t, resp.Error)

	assert.Equal(t, []byte(`{"tags":[]}`), imports.raw)
	assert.Equal(t, "json", imports.inputType)
	assert.Equal(t, models.ImportOptions{Mode: models.SkipIfUnchanged, SkipShared: true}, imports.opts)
}

func TestImportFile_QueryParameters(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantType string
		wantOpts models.ImportOptions
	}{
		{
			name:     "numeric mode",
			query:    "?type=csv&mode=3&skipShared=false",
			wantType: "csv",
			wantOpts: models.ImportOptions{Mode: models.MergeFields, SkipShared: false},
		},
		{
			name:     "named mode",
			query:    "?mode=skip-existing",
			wantType: "json",
			wantOpts: models.ImportOptions{Mode: models.AlwaysSkipExisting, SkipShared: true},
		},
		{
			name:     "unknown mode falls back to create new",
			query:    "?mode=7",
			wantType: "json",
			wantOpts: models.ImportOptions{Mode: models.AlwaysCreateNew, SkipShared: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imports := &stubImportService{result: models.Completed(models.ImportOutcome{})}
			router := newTestRouter(t, imports)

			rec := postImport(t, router, tt.query, []byte("data"), nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantType, imports.inputType)
			assert.Equal(t, tt.wantOpts, imports.opts)
		})
	}
}

func TestImportFile_RejectedRequests(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		body       []byte
		wantStatus int
	}{
		{name: "invalid skipShared", query: "?skipShared=maybe", body: []byte("x"), wantStatus: http.StatusBadRequest},
		{name: "empty body", body: nil, wantStatus: http.StatusBadRequest},
		{name: "body over limit", body: bytes.Repeat([]byte("a"), 2<<10), wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imports := &stubImportService{}
			router := newTestRouter(t, imports)

			rec := postImport(t, router, tt.query, tt.body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, imports.called)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestImportFile_FailedRuns(t *testing.T) {
	tests := []struct {
		name       string
		result     models.ImportResult
		wantStatus int
		wantPhase  models.ImportPhase
	}{
		{
			name: "parse failure",
			result: models.Failed(models.PhaseParse,
				fmt.Errorf("%w: %w", service.ErrConvertInput, converter.ErrMalformedInput), models.ImportOutcome{}),
			wantStatus: http.StatusBadRequest,
			wantPhase:  models.PhaseParse,
		},
		{
			name: "folder phase failure",
			result: models.Failed(models.PhaseFolders,
				fmt.Errorf("%w: connection refused", service.ErrUnableToCreateFolders),
				models.ImportOutcome{Processed: 3, Total: 5}),
			wantStatus: http.StatusBadGateway,
			wantPhase:  models.PhaseFolders,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, &stubImportService{result: tt.result})

			rec := postImport(t, router, "", []byte("x"), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeImportResponse(t, rec)
			assert.Equal(t, tt.wantPhase, resp.FailedPhase)
			assert.Equal(t, tt.result.Err().Error(), resp.Error)
			assert.Equal(t, tt.result.Outcome.Processed, resp.Processed)
		})
	}
}

func TestImportFile_PartialSuccessIsOK(t *testing.T) {
	router := newTestRouter(t, &stubImportService{result: models.Completed(models.ImportOutcome{
		Processed: 1,
		Total:     1,
		Errors:    []string{`"boom" in tag "work".`},
	})})

	rec := postImport(t, router, "", []byte("x"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{`"boom" in tag "work".`}, decodeImportResponse(t, rec).Errors)
}

func TestImportFile_GzipBody(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"passwords":[]}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	imports := &stubImportService{result: models.Completed(models.ImportOutcome{})}
	router := newTestRouter(t, imports)

	rec := postImport(t, router, "", buf.Bytes(), map[string]string{"Content-Encoding": "gzip"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"passwords":[]}`, string(imports.raw))
}

func TestImportFile_InvalidGzipBody(t *testing.T) {
	imports := &stubImportService{}
	router := newTestRouter(t, imports)

	rec := postImport(t, router, "", []byte("not gzip"), map[string]string{"Content-Encoding": "gzip"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, imports.called)
}

func TestImportFile_TraceIDBecomesRunID(t *testing.T) {
	imports := &stubImportService{result: models.Completed(models.ImportOutcome{})}
	router := newTestRouter(t, imports)

	rec := postImport(t, router, "", []byte("x"), map[string]string{traceIDHeader: "trace-42"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	assert.Equal(t, "trace-42", imports.runID)
}

func TestStatusFromError_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFromError(fmt.Errorf("boom")))
	assert.Equal(t, http.StatusBadRequest, statusFromError(fmt.Errorf("wrap: %w", ErrEmptyBody)))
	assert.True(t, strings.Contains(ErrInvalidSkipShared.Error(), "skipShared"))
}
