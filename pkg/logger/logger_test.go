package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		env     logger.Environment
		level   string
		wantErr bool
	}{
		{name: "development with debug level", env: logger.Development, level: "debug"},
		{name: "production with info level", env: logger.Production, level: "info"},
		{name: "empty level uses default", env: logger.Development, level: ""},
		{name: "invalid level", env: logger.Production, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.NewLogger(tt.env, tt.level)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestLogFromContext(t *testing.T) {
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	ctx := logger.NewContext(context.Background(), testLogger)

	got, err := logger.FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, testLogger, got)

	assert.Same(t, testLogger, logger.Log(ctx))
}

func TestFromContext_Missing(t *testing.T) {
	_, err := logger.FromContext(context.Background())
	require.ErrorIs(t, err, logger.ErrLoggerNotFound)
}

func TestRequestIDContext(t *testing.T) {
	ctx := logger.NewRequestIDContext(context.Background(), "req-123")

	id, ok := logger.GetRequestID(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-123", id)

	generated := logger.NewRequestIDContext(context.Background(), "")
	id, ok = logger.GetRequestID(generated)
	require.True(t, ok)
	assert.NotEmpty(t, id)
}
