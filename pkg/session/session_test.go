package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_NilClient(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	assert.NoError(t, store.Revoke(ctx, "token-1", time.Now().Add(time.Hour)))

	revoked, err := store.IsRevoked(ctx, "token-1")
	assert.NoError(t, err)
	assert.False(t, revoked)
}

func TestStore_NilStore(t *testing.T) {
	var store *Store

	revoked, err := store.IsRevoked(context.Background(), "token-1")
	assert.NoError(t, err)
	assert.False(t, revoked)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "session:revoked:abc", key("abc"))
}
