package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskpost-api/internal/api/shared"
)

// getPathID extracts a positive integer ID from the URL path parameters.
// Anything that cannot be an ID yields notFound, since such an entity
// cannot exist.
func getPathID(r *http.Request, paramName string, notFound error) (int64, error) {
	raw := chi.URLParam(r, paramName)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", notFound, paramName, raw)
	}
	return id, nil
}

// parseAndValidateRequest decodes the body into req and validates it,
// writing the error response itself when either step fails.
func parseAndValidateRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeAndValidate(r, req); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}

	return true
}
