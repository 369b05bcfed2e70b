package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/frontdoor/pkg/mongo"
)

func TestNew_EmptyURL(t *testing.T) {
	t.Parallel()

	client, err := mongo.New(context.Background(), mongo.Config{})
	require.ErrorIs(t, err, mongo.ErrEmptyURL)
	assert.Nil(t, client)
}

func TestNewWithDatabase_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, db, err := mongo.NewWithDatabase(ctx, mongo.Config{
		ConnectionURL:  "mongodb://127.0.0.1:1",
		Database:       "frontdoor",
		ConnectTimeout: 50 * time.Millisecond,
		RetryAttempts:  2,
		RetryInterval:  time.Millisecond,
	})
	require.ErrorIs(t, err, mongo.ErrFailedToConnect)
	assert.Nil(t, client)
	assert.Nil(t, db)
}
