// Package http exposes the import service over a small REST API.
//
// POST /api/import accepts a raw export in the request body and returns the
// import outcome as JSON. GET /api/version reports the build of the running
// server. Request tracing, access logging, gzip request bodies and upload
// size limits are handled by middleware before the service is called.
package http
