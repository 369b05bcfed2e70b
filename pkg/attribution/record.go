package attribution

import "time"

// Status is the upload state of a record as seen by the downstream uploader.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusSent    Status = "SENT"
	StatusFailed  Status = "FAILED"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusSent, StatusFailed:
		return true
	}
	return false
}

// ParseStatus converts a stored value to a Status.
func ParseStatus(s string) (Status, error) {
	if st := Status(s); st.Valid() {
		return st, nil
	}
	return "", ErrInvalidStatus
}

// Record is the attribution row of one session.
type Record struct {
	SessionID    string
	GCLID        string // empty when stored as NULL by another writer
	UploadStatus Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Patch is the change applied by Store.Upsert.
type Patch struct {
	GCLID string
	At    time.Time
}

// validate rejects patches no store may write: an upsert without a session
// key or without a gclid would create a record with nothing to attribute.
func (p Patch) validate(sessionID string) error {
	switch {
	case sessionID == "":
		return ErrEmptySessionID
	case p.GCLID == "":
		return ErrEmptyGCLID
	}
	return nil
}

// apply returns the record after applying p to current (nil when absent).
// Stores that cannot express the rule natively use it under their own lock.
func (p Patch) apply(sessionID string, current *Record) Record {
	if current == nil {
		return Record{
			SessionID:    sessionID,
			GCLID:        p.GCLID,
			UploadStatus: StatusPending,
			CreatedAt:    p.At,
			UpdatedAt:    p.At,
		}
	}

	next := *current
	if next.GCLID != p.GCLID {
		next.GCLID = p.GCLID
		next.UploadStatus = StatusPending
	}
	next.UpdatedAt = p.At
	return next
}
