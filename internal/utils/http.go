package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/models"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// encodeFailureBody is sent when a response value cannot be marshalled.
var encodeFailureBody = []byte(`{"message":"Internal server error"}`)

// WriteJSON marshals data and writes it with the given status. The body is
// marshalled before any header is sent, so a marshalling failure still
// produces a clean 500 response.
//
//	WriteJSON(w, entries, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		_, _ = writeBody(w, contentTypeJSON, http.StatusInternalServerError, encodeFailureBody)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return writeBody(w, contentTypeJSON, statusCode, body)
}

// WriteMessage writes a {"message": message} JSON body with the given status.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

// WriteText writes a plain-text body with the given status.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	return writeBody(w, contentTypeText, statusCode, []byte(text))
}

func writeBody(w http.ResponseWriter, contentType string, statusCode int, body []byte) (int, error) {
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
