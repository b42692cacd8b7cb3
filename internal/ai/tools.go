package ai

import (
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// postPayload is the untyped {post, intent} pair as declared to the provider.
type postPayload struct {
	Post   string `json:"post"`
	Intent string `json:"intent"`
}

// savePostsInput is the tool input schema for batch generation.
type savePostsInput struct {
	Posts []postPayload `json:"posts"`
}

// saveRevisionInput is the tool input schema for post adjustment.
type saveRevisionInput = postPayload

// getSavePostsTool declares the structured response shape for generation: an
// array of exactly five {post, intent} objects.
func getSavePostsTool(minLength, maxLength int) anthropic.ToolParam {
	return anthropic.ToolParam{
		Name: "save_posts",
		Description: anthropic.String(
			"Save the five generated X post variants with their intents",
		),
		InputSchema: anthropic.ToolInputSchemaParam{
			Type: "object",
			Properties: map[string]interface{}{
				"posts": map[string]interface{}{
					"type":     "array",
					"minItems": 5,
					"maxItems": 5,
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"post": map[string]interface{}{
								"type": "string",
								"description": fmt.Sprintf(
									"A X post body between %d and %d characters, written in the persona of 'Kashiwagi'. It must include hashtags but NO emojis.",
									minLength, maxLength,
								),
							},
							"intent": map[string]interface{}{
								"type":        "string",
								"description": "この投稿の狙い、ターゲット層、エンゲージメントのフック（日本語）",
							},
						},
						"required": []string{"post", "intent"},
					},
					"description": "Exactly five distinct post variations",
				},
			},
			Required: []string{"posts"},
		},
	}
}

// getSaveRevisionTool declares the structured response shape for adjustment:
// a single {post, intent} object.
func getSaveRevisionTool() anthropic.ToolParam {
	return anthropic.ToolParam{
		Name: "save_revision",
		Description: anthropic.String(
			"Save the revised X post with its new intent",
		),
		InputSchema: anthropic.ToolInputSchemaParam{
			Type: "object",
			Properties: map[string]interface{}{
				"post": map[string]interface{}{
					"type":        "string",
					"description": "The revised X post body, written in the persona of 'Kashiwagi'. It must include hashtags but NO emojis.",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "この修正された投稿の狙い、ターゲット層、エンゲージメントのフック（日本語）",
				},
			},
			Required: []string{"post", "intent"},
		},
	}
}

// parseToolUse extracts the first tool-use block from response content and
// decodes its input into T.
func parseToolUse[T any](content []anthropic.ContentBlockUnion) (*T, error) {
	for _, block := range content {
		if toolUse, ok := block.AsAny().(anthropic.ToolUseBlock); ok {
			inputBytes, err := json.Marshal(toolUse.Input)
			if err != nil {
				return nil, fmt.Errorf("%w: marshal tool input: %v", ErrInvalidResponse, err)
			}
			var input T
			if err := json.Unmarshal(inputBytes, &input); err != nil {
				return nil, fmt.Errorf("%w: parse tool input: %v", ErrInvalidResponse, err)
			}
			return &input, nil
		}
	}
	return nil, fmt.Errorf("%w: no tool use in response", ErrInvalidResponse)
}
