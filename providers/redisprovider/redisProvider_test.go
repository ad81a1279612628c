package redisprovider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPingReportsUnreachableServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	provider := NewRedisProvider("127.0.0.1:1")
	defer provider.Close()

	assert.Error(t, provider.Ping(ctx))
	assert.NoError(t, provider.Del(ctx))
}
