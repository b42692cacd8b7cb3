// Package ai orchestrates calls to the model providers: Anthropic for text
// generation and OpenAI for cover images. It is the only package that talks
// to the network.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"github.com/alkime/postcraft/internal/post"
	"github.com/alkime/postcraft/internal/prompt"
)

const (
	defaultMaxTokens = 8192

	// thinkingBudget is the token budget granted when thinking mode is on.
	// MaxTokens must exceed it, so thinking requests get a larger ceiling.
	thinkingBudget    = 32768
	thinkingMaxTokens = 40960
)

// Client implements Generator against the real providers.
type Client struct {
	anthropicKey string
	openaiKey    string
	textModel    anthropic.Model
	imageModel   string
}

// NewClient creates a provider client. Keys may be empty; each call checks
// its own credential before touching the network.
func NewClient(anthropicKey, openaiKey string) *Client {
	return &Client{
		anthropicKey: anthropicKey,
		openaiKey:    openaiKey,
		textModel:    anthropic.ModelClaudeSonnet4_5_20250929,
		imageModel:   defaultImageModel,
	}
}

// GeneratePosts issues one structured-output call and returns five posts with
// freshly assigned IDs in arrival order.
func (c *Client) GeneratePosts(ctx context.Context, req post.GenerationRequest) ([]post.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if c.anthropicKey == "" {
		return nil, fmt.Errorf("%w: set ANTHROPIC_API_KEY", ErrMissingCredential)
	}

	client := anthropic.NewClient(option.WithAPIKey(c.anthropicKey))
	compiled := prompt.Generate(req)

	toolDef := getSavePostsTool(req.MinLength, req.MaxLength)
	tool := anthropic.ToolUnionParamOfTool(toolDef.InputSchema, toolDef.Name)
	tool.OfTool.Description = toolDef.Description

	params := anthropic.MessageNewParams{
		Model:     c.textModel,
		MaxTokens: defaultMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: compiled.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(compiled.User)),
		},
		Tools: []anthropic.ToolUnionParam{tool},
	}
	if req.Thinking {
		// Extended thinking only supports auto tool choice, so the forced
		// choice is reserved for non-thinking requests.
		params.MaxTokens = thinkingMaxTokens
		params.Thinking = anthropic.ThinkingConfigParamOfEnabled(thinkingBudget)
	} else {
		params.ToolChoice = anthropic.ToolChoiceParamOfTool(toolDef.Name)
	}

	resp, err := client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: generate posts: %v", ErrProvider, err)
	}

	payload, err := parseToolUse[savePostsInput](resp.Content)
	if err != nil {
		return nil, err
	}
	posts, err := postsFromPayload(payload.Posts)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].ID = uuid.NewString()
	}
	return posts, nil
}

// AdjustPost revises an existing post. A request with no axes set resolves
// without a network call; the store is untouched either way.
func (c *Client) AdjustPost(ctx context.Context, original post.Post, req post.AdjustmentRequest) (post.Post, error) {
	if err := req.Validate(); err != nil {
		return post.Post{}, err
	}
	if req.IsZero() {
		return original, nil
	}
	if c.anthropicKey == "" {
		return post.Post{}, fmt.Errorf("%w: set ANTHROPIC_API_KEY", ErrMissingCredential)
	}

	client := anthropic.NewClient(option.WithAPIKey(c.anthropicKey))
	compiled := prompt.Adjust(original, req)

	toolDef := getSaveRevisionTool()
	tool := anthropic.ToolUnionParamOfTool(toolDef.InputSchema, toolDef.Name)
	tool.OfTool.Description = toolDef.Description

	params := anthropic.MessageNewParams{
		Model:     c.textModel,
		MaxTokens: thinkingMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: compiled.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(compiled.User)),
		},
		Tools:    []anthropic.ToolUnionParam{tool},
		Thinking: anthropic.ThinkingConfigParamOfEnabled(thinkingBudget),
	}

	resp, err := client.Messages.New(ctx, params)
	if err != nil {
		return post.Post{}, fmt.Errorf("%w: adjust post: %v", ErrProvider, err)
	}

	payload, err := parseToolUse[saveRevisionInput](resp.Content)
	if err != nil {
		return post.Post{}, err
	}
	revised, err := postFromPayload(*payload)
	if err != nil {
		return post.Post{}, err
	}
	// Adjustment never changes identity, whatever the provider returned.
	revised.ID = original.ID
	return revised, nil
}

// GenerateStructure issues one plain-text call and returns the raw Mermaid
// markup, with surrounding code fences stripped.
func (c *Client) GenerateStructure(ctx context.Context, req post.StructureRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if c.anthropicKey == "" {
		return "", fmt.Errorf("%w: set ANTHROPIC_API_KEY", ErrMissingCredential)
	}

	client := anthropic.NewClient(option.WithAPIKey(c.anthropicKey))
	compiled := prompt.Structure(req)

	resp, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.textModel,
		MaxTokens: defaultMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: compiled.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(compiled.User)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: generate structure: %v", ErrProvider, err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("%w: empty structure response", ErrInvalidResponse)
	}
	textBlock, ok := resp.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", fmt.Errorf("%w: unexpected content block in structure response", ErrInvalidResponse)
	}

	diagram := stripCodeFence(textBlock.Text)
	if diagram == "" {
		return "", fmt.Errorf("%w: empty diagram source", ErrInvalidResponse)
	}
	return diagram, nil
}

// stripCodeFence removes a surrounding markdown code fence, if any, and trims
// whitespace. The diagram language itself is never parsed here.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// Drop the language tag line (e.g. "mermaid").
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

var _ Generator = (*Client)(nil)
