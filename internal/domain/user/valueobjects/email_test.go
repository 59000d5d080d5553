package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"normalizes case and space", "  Admin@Example.COM ", "admin@example.com", false},
		{"plus addressing", "ops+tickets@example.org", "ops+tickets@example.org", false},
		{"empty", "", "", true},
		{"missing domain", "admin@", "", true},
		{"non ascii", "ädmin@example.com", "", true},
		{"too long", strings.Repeat("a", 250) + "@example.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.String())
		})
	}
}

func TestEmail_Equals(t *testing.T) {
	a, _ := NewEmail("a@example.com")
	b, _ := NewEmail("A@example.com")
	c, _ := NewEmail("c@example.com")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))

	var none *Email
	assert.True(t, none.Equals(nil))
}
