package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/theoremgo/internal/cli"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("full flag set", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := cli.Parse([]string{
			"--environments", "envs.hcl",
			"--document", "doc.hcl",
			"--backend", "markdown",
			"--log-level", "debug",
		}, &out)
		require.NoError(t, err)
		require.False(t, exit)
		assert.Equal(t, "envs.hcl", cfg.EnvironmentsPath)
		assert.Equal(t, "doc.hcl", cfg.DocumentPath)
		assert.Equal(t, "markdown", cfg.Backend)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("positional document path and shorthand", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := cli.Parse([]string{"-e", "envs.hcl", "doc.hcl"}, &out)
		require.NoError(t, err)
		require.False(t, exit)
		assert.Equal(t, "doc.hcl", cfg.DocumentPath)
		assert.Equal(t, "latex", cfg.Backend)
	})

	t.Run("missing paths prints usage and exits cleanly", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := cli.Parse([]string{}, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("invalid log level", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := cli.Parse([]string{"-e", "envs.hcl", "--log-level", "loud", "doc.hcl"}, &out)
		require.Error(t, err)
		exitErr, ok := err.(*cli.ExitError)
		require.True(t, ok)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid log format", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := cli.Parse([]string{"-e", "envs.hcl", "--log-format", "xml", "doc.hcl"}, &out)
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid log-format")
	})
}
