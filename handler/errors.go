package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with a status code and a translation key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string { return e.Key }

var (
	ErrBadRequest = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound   = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
)

// badRequest tags a bind failure as a 400 while keeping the cause.
func badRequest(err error) error {
	return errors.Join(ErrBadRequest, err)
}
