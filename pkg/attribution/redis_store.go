package attribution

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "attribution:"

// upsertScript applies the insert-or-update rule atomically on a hash.
// KEYS[1] record key; ARGV[1] gclid; ARGV[2] timestamp.
var upsertScript = redis.NewScript(`
local key = KEYS[1]
local gclid = ARGV[1]
local now = ARGV[2]
if redis.call('EXISTS', key) == 0 then
  redis.call('HSET', key, 'gclid', gclid, 'upload_status', 'PENDING', 'created_at', now, 'updated_at', now)
  return 1
end
if redis.call('HGET', key, 'gclid') ~= gclid then
  redis.call('HSET', key, 'gclid', gclid, 'upload_status', 'PENDING')
end
redis.call('HSET', key, 'updated_at', now)
return 0
`)

// RedisStore keeps each record in a hash under prefix+sessionID.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// NewRedisStore returns a store over client. Keys default to the
// "attribution:" prefix unless WithKeyPrefix is given.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{client: client, prefix: defaultRedisKeyPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}

// Upsert runs upsertScript, so the compare and write happen in one step.
func (s *RedisStore) Upsert(ctx context.Context, sessionID string, patch Patch) error {
	if err := patch.validate(sessionID); err != nil {
		return err
	}
	at := patch.At.UTC().Format(time.RFC3339Nano)
	if err := upsertScript.Run(ctx, s.client, []string{s.key(sessionID)}, patch.GCLID, at).Err(); err != nil {
		return errors.Join(ErrFailedToUpsert, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Record, error) {
	fields, err := s.client.HGetAll(ctx, s.key(sessionID)).Result()
	if err != nil {
		return nil, errors.Join(ErrFailedToGet, err)
	}
	if len(fields) == 0 {
		return nil, ErrRecordNotFound
	}

	status, err := ParseStatus(fields["upload_status"])
	if err != nil {
		return nil, errors.Join(ErrMalformedRecord, err)
	}
	created, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, errors.Join(ErrMalformedRecord, err)
	}
	updated, err := time.Parse(time.RFC3339Nano, fields["updated_at"])
	if err != nil {
		return nil, errors.Join(ErrMalformedRecord, err)
	}

	return &Record{
		SessionID:    sessionID,
		GCLID:        fields["gclid"],
		UploadStatus: status,
		CreatedAt:    created,
		UpdatedAt:    updated,
	}, nil
}
