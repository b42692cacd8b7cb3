package ai

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/alkime/postcraft/internal/post"
	"github.com/alkime/postcraft/internal/prompt"
)

const defaultImageModel = "gpt-image-1"

// GenerateImage issues one image-generation call requesting a single
// widescreen JPEG and returns it as a data URI.
func (c *Client) GenerateImage(ctx context.Context, req post.ImageRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if c.openaiKey == "" {
		return "", fmt.Errorf("%w: set OPENAI_API_KEY", ErrMissingCredential)
	}

	client := openai.NewClient(option.WithAPIKey(c.openaiKey))

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt: prompt.Image(req),
		Model:  openai.ImageModel(c.imageModel),
		N:      openai.Int(1),
		// Closest landscape size to the 1280x670 cover target.
		Size:         openai.ImageGenerateParamsSize1536x1024,
		OutputFormat: openai.ImageGenerateParamsOutputFormatJPEG,
	})
	if err != nil {
		return "", fmt.Errorf("%w: generate image: %v", ErrProvider, err)
	}

	if resp == nil || len(resp.Data) == 0 {
		return "", fmt.Errorf("%w: no image returned", ErrInvalidResponse)
	}
	b64 := resp.Data[0].B64JSON
	if b64 == "" {
		return "", fmt.Errorf("%w: image payload missing base64 data", ErrInvalidResponse)
	}
	return "data:image/jpeg;base64," + b64, nil
}
