package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is written when a payload cannot be encoded, so clients
// still receive the failure envelope shape.
const marshalFailureBody = `{"status_code":500,"success":false,"message":"An error occurred: response encoding failed","data":null}`

// WriteJSON serializes data and writes it with the given status code and an
// "application/json" Content-Type.
//
// The payload is marshaled before anything is written, so a marshal error
// leaves the writer untouched until the fallback: a 500 failure envelope is
// sent instead and the wrapped error is returned.
//
// Example usage:
//
//	WriteJSON(w, items, http.StatusOK)
//	WriteJSON(w, models.NewFailureResponse(404, "Not Found"), http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes text as a "text/plain; charset=utf-8" response.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}
