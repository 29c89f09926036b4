package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// bearerPrefix is the authorization scheme prefix, matched case-sensitively.
const bearerPrefix = "Bearer "

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.Response{Success: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// StripBearer removes a literal "Bearer " prefix from an Authorization
// header value. Values without the prefix are returned unchanged, so a bare
// token is accepted too.
func StripBearer(header string) string {
	return strings.TrimPrefix(header, bearerPrefix)
}
