package api

import (
	"net/http"
	"strconv"

	"github.com/calebmaier/taskline-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// getPathID extracts the logical task ID from the URL path parameters.
// It parses and validates the integer before any store access happens, so
// a malformed ID is rejected without touching the database.
//
// Returns:
//   - (id, nil): The parsed integer if valid
//   - (0, error): A domain validation error if the parameter is missing or
//     not parseable as a base-10 integer
func getPathID(r *http.Request) (int64, error) {
	pathParam := chi.URLParam(r, "id")
	if pathParam == "" {
		return 0, domain.NewValidationError("id", "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("id", "must be an integer", domain.ErrInvalidID)
	}

	return id, nil
}

// pathIDValue returns the raw, unparsed id path parameter for logging.
func pathIDValue(r *http.Request) string {
	return chi.URLParam(r, "id")
}
