package config_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofalvai/chesscore/internal/config"
)

func TestSetupWithEmptyPathAppliesDefaults(t *testing.T) {
	require.NoError(t, config.Setup(""))
	assert.True(t, config.Config.Search.UseTranspositionTable)
	assert.Equal(t, 64, config.Config.Search.TtSizeMb)
	assert.Equal(t, config.MagicBaked, config.Config.Magic.Strategy)
}

func TestSetupOverlaysTomlFile(t *testing.T) {
	f, err := ioutil.TempFile("", "chesscore-config-*.toml")
	require.NoError(t, err)
	defer os.Remove(f.Name())

	_, err = f.WriteString("[search]\ntt_size_mb = 128\nuse_quiescence = false\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, config.Setup(f.Name()))
	assert.Equal(t, 128, config.Config.Search.TtSizeMb)
	assert.False(t, config.Config.Search.UseQuiescence)
	// fields untouched by the file keep their defaults
	assert.True(t, config.Config.Search.UseKillerMoves)
}

func TestSetupWithMissingFileReturnsError(t *testing.T) {
	err := config.Setup("/nonexistent/path/chesscore.toml")
	assert.Error(t, err)
}
