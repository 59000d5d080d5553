package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow_MasksSecrets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  driver: mysql
  password: hunter2
redis:
  password: s3cret
`), 0o600))

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"show", "--config", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "driver: mysql")
	assert.Contains(t, out.String(), "******")
	assert.NotContains(t, out.String(), "hunter2")
	assert.NotContains(t, out.String(), "s3cret")
}
