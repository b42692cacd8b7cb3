package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alkime/postcraft/internal/post"
)

func TestGeneratePostsRequiresCredential(t *testing.T) {
	client := NewClient("", "")
	_, err := client.GeneratePosts(context.Background(), post.GenerationRequest{
		Topic:      "リーダーシップ",
		MinLength:  300,
		MaxLength:  600,
		Difficulty: 3,
	})
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestGeneratePostsRejectsBadRequestBeforeCredentialCheck(t *testing.T) {
	client := NewClient("", "")
	_, err := client.GeneratePosts(context.Background(), post.GenerationRequest{
		Topic:      "",
		MinLength:  300,
		MaxLength:  600,
		Difficulty: 3,
	})
	assert.ErrorIs(t, err, post.ErrInvalidRequest)
}

func TestAdjustPostNoOpSkipsNetwork(t *testing.T) {
	// No credentials configured: a zero-value adjustment must still succeed
	// because it resolves before the credential check or any network call.
	client := NewClient("", "")
	original := post.Post{ID: "42", Post: "本文", Intent: "意図"}

	result, err := client.AdjustPost(context.Background(), original, post.AdjustmentRequest{})
	require.NoError(t, err)
	assert.Equal(t, original, result)

	result, err = client.AdjustPost(context.Background(), original, post.AdjustmentRequest{Instruction: "  "})
	require.NoError(t, err)
	assert.Equal(t, original, result)
}

func TestAdjustPostRequiresCredentialWhenAxesSet(t *testing.T) {
	client := NewClient("", "")
	original := post.Post{ID: "42", Post: "本文", Intent: "意図"}
	_, err := client.AdjustPost(context.Background(), original, post.AdjustmentRequest{Length: post.LengthShorter})
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestGenerateImageRequiresCredential(t *testing.T) {
	client := NewClient("anthropic-key-only", "")
	_, err := client.GenerateImage(context.Background(), post.ImageRequest{
		SourceText: "本文",
		Tone:       post.ToneWatercolor,
	})
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestGenerateStructureRequiresCredential(t *testing.T) {
	client := NewClient("", "openai-key-only")
	_, err := client.GenerateStructure(context.Background(), post.StructureRequest{
		SourceText:  "本文",
		DetailLevel: 3,
		DiagramType: post.DiagramFlowchart,
	})
	assert.ErrorIs(t, err, ErrMissingCredential)
}
