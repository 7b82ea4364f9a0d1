package httpapi

import (
	"net/http"

	"priced/internal/model"
	"priced/internal/store"
	"priced/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusForError maps well-known model/store errors to HTTP status codes.
// Every failure is still rendered as a {success:false, message} envelope, so
// callers that only read the body see the Flask-style contract.
func statusForError(err error) int {
	switch {
	case store.IsInvalidInput(err), model.IsUnsupportedFormat(err):
		return http.StatusBadRequest
	case model.IsFileNotFound(err):
		return http.StatusNotFound
	case store.IsNoModelLoaded(err):
		return http.StatusConflict
	case model.IsDeserialization(err), model.IsMetadataParse(err):
		return http.StatusUnprocessableEntity
	}
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// writeJSONError writes a consistent JSON failure payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Success: false, Message: msg, Code: status})
}
