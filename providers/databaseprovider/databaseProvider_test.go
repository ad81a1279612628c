package databaseprovider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/providers/loggerProvider"
)

func TestNewDBProviderReturnsConnectError(t *testing.T) {
	provider, err := NewDBProvider(
		"host=127.0.0.1 port=1 user=inventory dbname=inventory sslmode=disable connect_timeout=1",
		"file://database/migrations",
		loggerProvider.NewNopLogProvider())
	require.Error(t, err)
	assert.Nil(t, provider)
	assert.Contains(t, err.Error(), "failed to connect to postgres")
}

func TestNewMongoProviderReturnsPingError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	provider, err := NewMongoProvider(ctx, "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200", "inventory", loggerProvider.NewNopLogProvider())
	require.Error(t, err)
	assert.Nil(t, provider)
	assert.Contains(t, err.Error(), "mongodb")
}
