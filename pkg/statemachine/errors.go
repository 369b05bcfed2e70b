package statemachine

import "errors"

var ErrNoTransition = errors.New("transition not allowed")
