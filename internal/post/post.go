// Package post defines the domain model for generated social posts and the
// request types accepted by the generation layer.
package post

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest marks caller contract violations (bad parameters). These
// are rejected before any provider call is made.
var ErrInvalidRequest = errors.New("invalid request")

// Post is a single generated post variant. ID is assigned by the
// orchestration layer, never by the provider, and survives adjustment.
type Post struct {
	ID     string `json:"id"`
	Post   string `json:"post"`
	Intent string `json:"intent"`
}

// LengthDirection adjusts post length during revision.
type LengthDirection string

const (
	LengthNone    LengthDirection = ""
	LengthShorter LengthDirection = "shorter"
	LengthLonger  LengthDirection = "longer"
)

// DifficultyDirection adjusts expertise level during revision.
type DifficultyDirection string

const (
	DifficultyNone       DifficultyDirection = ""
	DifficultySimpler    DifficultyDirection = "simpler"
	DifficultyMoreExpert DifficultyDirection = "more_expert"
)

// ImageTone selects one of the fixed cover image styles.
type ImageTone string

const (
	ToneLineArt    ImageTone = "line-art"
	ToneWatercolor ImageTone = "watercolor"
	ToneCreative   ImageTone = "creative"
)

// DiagramType selects the structural diagram flavor.
type DiagramType string

const (
	DiagramFlowchart DiagramType = "flowchart"
	DiagramSequence  DiagramType = "sequence"
)

// GenerationRequest holds the user parameters for a batch generation.
type GenerationRequest struct {
	Topic      string `json:"topic"`
	Direction  string `json:"direction"`
	MinLength  int    `json:"minLength"`
	MaxLength  int    `json:"maxLength"`
	Difficulty int    `json:"difficulty"`
	Thinking   bool   `json:"thinking"`
}

// Validate checks the caller contract: non-empty topic, sane length bounds,
// difficulty within the 5-level table.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return fmt.Errorf("%w: topic is required", ErrInvalidRequest)
	}
	if r.MinLength < 1 {
		return fmt.Errorf("%w: minLength must be at least 1", ErrInvalidRequest)
	}
	if r.MaxLength < r.MinLength {
		return fmt.Errorf("%w: maxLength must be >= minLength", ErrInvalidRequest)
	}
	if r.Difficulty < 1 || r.Difficulty > 5 {
		return fmt.Errorf("%w: difficulty must be between 1 and 5", ErrInvalidRequest)
	}
	return nil
}

// AdjustmentRequest describes a revision of an existing post. All three axes
// optional; a request with none set is a no-op by contract.
type AdjustmentRequest struct {
	Length      LengthDirection     `json:"length"`
	Difficulty  DifficultyDirection `json:"difficulty"`
	Instruction string              `json:"instruction"`
}

// IsZero reports whether no adjustment axis is set.
func (r AdjustmentRequest) IsZero() bool {
	return r.Length == LengthNone &&
		r.Difficulty == DifficultyNone &&
		strings.TrimSpace(r.Instruction) == ""
}

// Validate rejects unknown axis values. Zero-value requests are valid; the
// client short-circuits them instead.
func (r AdjustmentRequest) Validate() error {
	switch r.Length {
	case LengthNone, LengthShorter, LengthLonger:
	default:
		return fmt.Errorf("%w: unknown length direction %q", ErrInvalidRequest, r.Length)
	}
	switch r.Difficulty {
	case DifficultyNone, DifficultySimpler, DifficultyMoreExpert:
	default:
		return fmt.Errorf("%w: unknown difficulty direction %q", ErrInvalidRequest, r.Difficulty)
	}
	return nil
}

// ImageRequest describes a cover image generation for a post body.
type ImageRequest struct {
	SourceText string    `json:"sourceText"`
	Tone       ImageTone `json:"tone"`
}

func (r ImageRequest) Validate() error {
	if strings.TrimSpace(r.SourceText) == "" {
		return fmt.Errorf("%w: source text is required", ErrInvalidRequest)
	}
	switch r.Tone {
	case ToneLineArt, ToneWatercolor, ToneCreative:
		return nil
	default:
		return fmt.Errorf("%w: unknown image tone %q", ErrInvalidRequest, r.Tone)
	}
}

// StructureRequest describes a structural diagram generation for a post body.
type StructureRequest struct {
	SourceText  string      `json:"sourceText"`
	DetailLevel int         `json:"detailLevel"`
	DiagramType DiagramType `json:"diagramType"`
}

func (r StructureRequest) Validate() error {
	if strings.TrimSpace(r.SourceText) == "" {
		return fmt.Errorf("%w: source text is required", ErrInvalidRequest)
	}
	if r.DetailLevel < 1 || r.DetailLevel > 5 {
		return fmt.Errorf("%w: detailLevel must be between 1 and 5", ErrInvalidRequest)
	}
	switch r.DiagramType {
	case DiagramFlowchart, DiagramSequence:
		return nil
	default:
		return fmt.Errorf("%w: unknown diagram type %q", ErrInvalidRequest, r.DiagramType)
	}
}
