package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "v1.2.3", Normalize("1.2.3"))
	assert.Equal(t, "v1.2.3", Normalize(" v1.2.3 "))
}

func TestCurrent(t *testing.T) {
	prev := Version
	t.Cleanup(func() { Version = prev })

	Version = "1.4"
	assert.Equal(t, "v1.4.0", Current())

	Version = "dev"
	assert.Equal(t, "dev", Current())
}

func TestString(t *testing.T) {
	prevV, prevC, prevB := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = prevV, prevC, prevB })

	Version, Commit, BuildTime = "2.0.1", "abc123", "2024-05-01"
	assert.Equal(t, "v2.0.1 (abc123) built 2024-05-01", String())
}
