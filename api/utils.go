package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"breakout-screener/database"
)

// Pagination defaults for the ranked listing
const (
	defaultPage = 1
	defaultSize = 20
)

const dateLayout = "2006-01-02"

// paginate converts 1-based page/size into limit/offset
func paginate(page, size int) (limit, offset int) {
	return size, (page - 1) * size
}

// getIntParam retrieves an integer query parameter, falling back to the
// default when missing, unparseable, or below min
func getIntParam(r *http.Request, key string, defaultVal, minVal int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil || val < minVal {
		return defaultVal
	}
	return val
}

// getDateParam parses a required YYYY-MM-DD query parameter
func getDateParam(r *http.Request, key string) (time.Time, error) {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return time.Time{}, database.NewValidationError(key, "is required")
	}

	val, err := time.Parse(dateLayout, valStr)
	if err != nil {
		return time.Time{}, database.NewValidationErrorWithValue(key, "must be YYYY-MM-DD", valStr)
	}
	return val, nil
}

// writeJSON sends a JSON response with the given status code
func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("API Error: failed to encode response: %v", err)
	}
}

// respondError logs the error and sends a JSON {message} error body
func respondError(w http.ResponseWriter, code int, message string) {
	log.Printf("API Error [%d]: %s", code, message)
	writeJSON(w, code, map[string]string{"message": message})
}

// respondMappedError maps the error taxonomy onto status codes in one
// place: ValidationError → 400, NotFoundError → 404, anything else is a
// store failure → 500 with the underlying message exposed.
func respondMappedError(w http.ResponseWriter, err error) {
	var vErr *database.ValidationError
	if errors.As(err, &vErr) {
		respondError(w, http.StatusBadRequest, vErr.Error())
		return
	}
	var nfErr *database.NotFoundError
	if errors.As(err, &nfErr) {
		respondError(w, http.StatusNotFound, nfErr.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}
