package ai

import (
	"context"

	"github.com/alkime/postcraft/internal/post"
)

// Generator is the single entry point per request kind. Implementations are
// request-scoped and safe for concurrent use across different posts.
type Generator interface {
	// GeneratePosts produces exactly five post variants for the request,
	// each with a freshly assigned unique ID in arrival order.
	GeneratePosts(ctx context.Context, req post.GenerationRequest) ([]post.Post, error)

	// AdjustPost revises an existing post. When no adjustment axis is set
	// it returns the original unchanged without calling the provider. The
	// result always carries the original's ID.
	AdjustPost(ctx context.Context, original post.Post, req post.AdjustmentRequest) (post.Post, error)

	// GenerateImage produces a cover image as a JPEG data URI.
	GenerateImage(ctx context.Context, req post.ImageRequest) (string, error)

	// GenerateStructure produces Mermaid diagram source summarizing a post.
	// The markup is returned as-is, validated only for non-emptiness.
	GenerateStructure(ctx context.Context, req post.StructureRequest) (string, error)
}
