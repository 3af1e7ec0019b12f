package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Parse()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.RunAddress)
		assert.Equal(t, "us-east-1", cfg.AWSRegion)
		assert.Equal(t, 64, cfg.DispatchQueueSize)
		assert.Equal(t, 4, cfg.DispatchWorkers)
		assert.Equal(t, uint64(2), cfg.DispatchMaxRetries)
		assert.Equal(t, 10*time.Second, cfg.DispatchRetryDelay)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("RUN_ADDRESS", ":9090")
		t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
		t.Setenv("DISPATCH_WORKERS", "8")
		t.Setenv("DISPATCH_RETRY_DELAY", "250ms")

		cfg, err := Parse()
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.RunAddress)
		assert.Equal(t, "http://dynamodb:8000", cfg.DynamoDBEndpoint)
		assert.Equal(t, 8, cfg.DispatchWorkers)
		assert.Equal(t, 250*time.Millisecond, cfg.DispatchRetryDelay)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("DISPATCH_RETRY_DELAY", "not-a-duration")

		_, err := Parse()
		require.Error(t, err)
	})
}
