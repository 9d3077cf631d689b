package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	config := NewConfig()

	// check default values
	require.Equal(t, "localhost:3000", config.Addr)
	require.Equal(t, "http://localhost:8000", config.APIBaseURL)
	require.NotEmpty(t, config.TokenFile)
	require.Equal(t, 15, config.Timeout)
	require.Equal(t, 2, config.SuccessDwell)
	require.Equal(t, "", config.ConfigPath)
}

func TestNewConfigReturnsCopies(t *testing.T) {
	first := NewConfig()
	first.Addr = "localhost:9999"

	second := NewConfig()
	require.Equal(t, "localhost:3000", second.Addr, "mutating one config must not leak into the next")
}
