package attribution

import (
	"context"
	"sync"
)

// MemoryStore keeps records in a map. Used in development and tests.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]Record
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Upsert applies patch under the store lock.
func (s *MemoryStore) Upsert(ctx context.Context, sessionID string, patch Patch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := patch.validate(sessionID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var current *Record
	if r, ok := s.records[sessionID]; ok {
		current = &r
	}
	s.records[sessionID] = patch.apply(sessionID, current)
	return nil
}

// Get returns a copy of the record, or ErrRecordNotFound.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[sessionID]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &r, nil
}

// SetStatus changes the upload status of an existing record, as the uploader would.
func (s *MemoryStore) SetStatus(sessionID string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[sessionID]
	if !ok {
		return ErrRecordNotFound
	}
	r.UploadStatus = status
	s.records[sessionID] = r
	return nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
