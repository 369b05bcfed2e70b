package binder

import "errors"

var (
	ErrInvalidQuery  = errors.New("invalid query parameter")
	ErrInvalidTarget = errors.New("binding target must be a non-nil pointer to struct")
)
