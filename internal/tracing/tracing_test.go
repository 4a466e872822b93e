package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClaudeMKA/Pulse-sub001/config"
)

func TestInit_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := Init(context.Background(), config.Tracing{ServiceName: "pulse"}, "test")

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInit_WithEndpoint(t *testing.T) {
	shutdown, err := Init(context.Background(), config.Tracing{OTLPEndpoint: "http://127.0.0.1:4318", ServiceName: "pulse"}, "test")

	require.NoError(t, err)
	require.NotNil(t, shutdown)
}
