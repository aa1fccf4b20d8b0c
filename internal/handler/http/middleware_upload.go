package http

import "net/http"

// withUploadLimit caps the request body at the configured upload size.
// Reading past the limit fails with [http.MaxBytesError].
func (h *Handler) withUploadLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.MaxUploadSize > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
		}
		next.ServeHTTP(w, r)
	})
}
