package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNewFriend(t *testing.T) {
	tests := []struct {
		name        string
		inName      string
		inImage     string
		wantName    string
		expectError bool
	}{
		{"valid", "Dana", "https://i.pravatar.cc/48", "Dana", false},
		{"trims", "  Dana ", " https://i.pravatar.cc/48 ", "Dana", false},
		{"empty name", "", "https://i.pravatar.cc/48", "", true},
		{"blank name", "   ", "https://i.pravatar.cc/48", "", true},
		{"empty image", "Dana", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, _, err := NormalizeNewFriend(tt.inName, tt.inImage)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrIncompleteFriend)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestAvatarURL(t *testing.T) {
	assert.Equal(t, "https://i.pravatar.cc/48?u=abc", AvatarURL("https://i.pravatar.cc/48", "abc"))
	assert.Equal(t, "https://img.test/a?size=48&u=abc", AvatarURL("https://img.test/a?size=48", "abc"))
}
