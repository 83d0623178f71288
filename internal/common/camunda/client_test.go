// internal/common/camunda/client_test.go
package camunda

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	apperrors "letter-workers/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *Client {
	return &Client{
		config: &ClientConfig{
			RetryConfig: &RetryConfig{
				MaxRetries: 3,
				BaseDelay:  time.Millisecond,
				MaxDelay:   5 * time.Millisecond,
			},
		},
	}
}

func TestExecuteWithRetry_SucceedsFirstAttempt(t *testing.T) {
	c := testClient()

	result, err := c.ExecuteWithRetry(context.Background(), func(ctx context.Context) (interface{}, error) {
		return "ok", nil
	}, "deploy-process")

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestExecuteWithRetry_RetriesTransientError(t *testing.T) {
	c := testClient()
	attempts := 0

	result, err := c.ExecuteWithRetry(context.Background(), func(ctx context.Context) (interface{}, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return "recovered", nil
	}, "create-instance")

	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
	assert.Equal(t, 3, attempts)
}

func TestExecuteWithRetry_DoesNotRetryPermanentError(t *testing.T) {
	c := testClient()
	attempts := 0

	_, err := c.ExecuteWithRetry(context.Background(), func(ctx context.Context) (interface{}, error) {
		attempts++
		return nil, errors.New("process definition not found")
	}, "create-instance")

	require.Error(t, err)
	assert.Equal(t, 1, attempts)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrorCode("RESOURCE_NOT_FOUND"), stdErr.Code)
}

func TestExecuteWithRetry_ExhaustsRetries(t *testing.T) {
	c := testClient()
	attempts := 0

	_, err := c.ExecuteWithRetry(context.Background(), func(ctx context.Context) (interface{}, error) {
		attempts++
		return nil, errors.New("broker unavailable")
	}, "deploy-process")

	require.Error(t, err)
	assert.Equal(t, 4, attempts)
}

func TestExecuteWithRetry_ContextCancelled(t *testing.T) {
	c := testClient()
	c.config.RetryConfig.BaseDelay = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ExecuteWithRetry(ctx, func(ctx context.Context) (interface{}, error) {
		return nil, errors.New("timeout waiting for broker")
	}, "deploy-process")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryableZeebeError(t *testing.T) {
	tests := []struct {
		err       error
		retryable bool
	}{
		{errors.New("connection refused"), true},
		{errors.New("DEADLINE exceeded on gateway"), true},
		{errors.New("broker UNAVAILABLE"), true},
		{errors.New("broken pipe"), true},
		{errors.New("element not found"), false},
		{errors.New("invalid variables"), false},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableZeebeError(tt.err))
		})
	}
}

func TestMapZeebeError(t *testing.T) {
	c := testClient()

	tests := []struct {
		name     string
		err      error
		wantCode apperrors.ErrorCode
	}{
		{"connection refused", errors.New("connection refused"), "EXTERNAL_SERVICE_ERROR"},
		{"timeout", errors.New("deadline exceeded"), "TIMEOUT_ERROR"},
		{"not found", errors.New("process not found"), "RESOURCE_NOT_FOUND"},
		{"already exists", errors.New("instance already exists"), "BUSINESS_RULE_VIOLATION"},
		{"unknown", errors.New("something odd"), "EXTERNAL_SERVICE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := c.mapZeebeError(tt.err, "deploy-process", 1)

			var stdErr *apperrors.StandardError
			require.ErrorAs(t, mapped, &stdErr)
			assert.Equal(t, tt.wantCode, stdErr.Code)
			assert.Contains(t, fmt.Sprint(stdErr.Details), "deploy-process")
		})
	}
}
