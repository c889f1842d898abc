package v1

import (
	"errors"
	"net/http"

	"github.com/ledgerlens/backend/internal/httputil"
	"github.com/ledgerlens/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, errProfileNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, httputil.ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	return http.StatusBadRequest
}

var (
	errProfileNotFound = errors.New("there is no benchmark profile for the bracket")
	errInvalidDecimal  = errors.New("must be a decimal number")
)
