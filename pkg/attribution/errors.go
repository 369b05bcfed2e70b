package attribution

import "errors"

var (
	ErrRecordNotFound  = errors.New("attribution record not found")
	ErrEmptySessionID  = errors.New("empty session id")
	ErrEmptyGCLID      = errors.New("empty gclid")
	ErrFailedToUpsert  = errors.New("failed to upsert attribution record")
	ErrFailedToGet     = errors.New("failed to get attribution record")
	ErrInvalidStatus   = errors.New("invalid upload status")
	ErrUnknownDriver   = errors.New("unknown ledger driver")
	ErrFailedToIndex   = errors.New("failed to ensure attribution indexes")
	ErrMalformedRecord = errors.New("malformed attribution record")
)
