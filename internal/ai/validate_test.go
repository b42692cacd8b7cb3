package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostsFromPayload(t *testing.T) {
	t.Run("admits well formed entries in order", func(t *testing.T) {
		posts, err := postsFromPayload([]postPayload{
			{Post: "一つ目", Intent: "狙い1"},
			{Post: "二つ目", Intent: "狙い2"},
		})
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "一つ目", posts[0].Post)
		assert.Equal(t, "狙い2", posts[1].Intent)
		assert.Empty(t, posts[0].ID, "IDs are assigned by the caller, never here")
	})

	t.Run("rejects empty list", func(t *testing.T) {
		_, err := postsFromPayload(nil)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("rejects entry with blank body", func(t *testing.T) {
		_, err := postsFromPayload([]postPayload{{Post: "  ", Intent: "狙い"}})
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("rejects entry with blank intent", func(t *testing.T) {
		_, err := postsFromPayload([]postPayload{{Post: "本文", Intent: ""}})
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare markup",
			input:    "flowchart TD\n  A --> B",
			expected: "flowchart TD\n  A --> B",
		},
		{
			name:     "mermaid fence",
			input:    "```mermaid\nflowchart TD\n  A --> B\n```",
			expected: "flowchart TD\n  A --> B",
		},
		{
			name:     "fence without language tag",
			input:    "```\nsequenceDiagram\n  A->>B: hi\n```",
			expected: "sequenceDiagram\n  A->>B: hi",
		},
		{
			name:     "surrounding whitespace",
			input:    "\n\n  flowchart LR\n  A --> B  \n",
			expected: "flowchart LR\n  A --> B",
		},
		{
			name:     "empty",
			input:    "   \n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripCodeFence(tt.input)
			if got != tt.expected {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
