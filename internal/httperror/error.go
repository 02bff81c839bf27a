// Package httperror maps application errors to HTTP responses.
package httperror

import (
	"errors"
	"net/http"

	"github.com/billtrack/backend/internal/models"
)

type Error struct {
	Error string `json:"error" example:"there is no project matching your query"`
}

func New(e error) Error {
	return Error{
		Error: e.Error(),
	}
}

// Status returns the appropriate HTTP status for an error.
//
// Validation and binding failures are client errors. Only errors the
// database layer has already classified as general server errors map
// to a 500.
func Status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
