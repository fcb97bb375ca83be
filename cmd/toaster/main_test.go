package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/riordanpawley/toaster/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toaster.json")

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"init", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), path)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	t.Run("refuses to overwrite", func(t *testing.T) {
		cmd := rootCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"init", path})
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestLoadConfig_ExplicitPathMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
