package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/masnyjimmy/specdoc/src/docs"
	"github.com/masnyjimmy/specdoc/src/validation"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		errorLogger.Printf("Unable to write response: %v", err)
	}
}

func writeHTML(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page))
}

// statusOf maps a pipeline failure to the HTTP status reported for it.
// Anything the client could fix is a 4xx, the rest is a server failure.
func statusOf(err error) int {
	var maxBytes *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytes), errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, validation.ErrValidation),
		errors.Is(err, docs.ErrParse),
		errors.Is(err, ErrUnsupportedFile),
		errors.Is(err, ErrNoFile):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeFailure reports err under title, or as an internal error when the
// client is not at fault.
func writeFailure(w http.ResponseWriter, title string, err error) {
	status := statusOf(err)

	if status == http.StatusInternalServerError {
		title = "Internal server error"
	}

	writeJSON(w, status, errorBody{Error: title, Message: err.Error()})
}
