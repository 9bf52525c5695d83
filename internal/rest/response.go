package rest

import (
	"errors"
	"net/http"

	"incotermFinder/business/incoterm"
	"incotermFinder/business/recommendation"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// statusFor maps service errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, incoterm.ErrIncotermNotFound):
		return http.StatusNotFound
	case errors.Is(err, incoterm.ErrInvalidTransportMode),
		errors.Is(err, incoterm.ErrInvalidComparison),
		errors.Is(err, recommendation.ErrIncompleteInput),
		errors.Is(err, recommendation.ErrInvalidAnswer):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
