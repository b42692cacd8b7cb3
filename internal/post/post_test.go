package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validGeneration() GenerationRequest {
	return GenerationRequest{
		Topic:      "リーダーシップ",
		MinLength:  300,
		MaxLength:  600,
		Difficulty: 3,
		Thinking:   true,
	}
}

func TestGenerationRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GenerationRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *GenerationRequest) {}},
		{name: "empty topic", mutate: func(r *GenerationRequest) { r.Topic = "" }, wantErr: true},
		{name: "whitespace topic", mutate: func(r *GenerationRequest) { r.Topic = "   " }, wantErr: true},
		{name: "zero min length", mutate: func(r *GenerationRequest) { r.MinLength = 0 }, wantErr: true},
		{name: "max below min", mutate: func(r *GenerationRequest) { r.MaxLength = 299 }, wantErr: true},
		{name: "min equals max", mutate: func(r *GenerationRequest) { r.MaxLength = 300 }},
		{name: "difficulty too low", mutate: func(r *GenerationRequest) { r.Difficulty = 0 }, wantErr: true},
		{name: "difficulty too high", mutate: func(r *GenerationRequest) { r.Difficulty = 6 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validGeneration()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdjustmentRequestIsZero(t *testing.T) {
	assert.True(t, AdjustmentRequest{}.IsZero())
	assert.True(t, AdjustmentRequest{Instruction: "   "}.IsZero())
	assert.False(t, AdjustmentRequest{Length: LengthShorter}.IsZero())
	assert.False(t, AdjustmentRequest{Difficulty: DifficultyMoreExpert}.IsZero())
	assert.False(t, AdjustmentRequest{Instruction: "もっとカジュアルに"}.IsZero())
}

func TestAdjustmentRequestValidate(t *testing.T) {
	assert.NoError(t, AdjustmentRequest{}.Validate())
	assert.NoError(t, AdjustmentRequest{Length: LengthLonger, Difficulty: DifficultySimpler}.Validate())
	assert.ErrorIs(t, AdjustmentRequest{Length: "wider"}.Validate(), ErrInvalidRequest)
	assert.ErrorIs(t, AdjustmentRequest{Difficulty: "harder"}.Validate(), ErrInvalidRequest)
}

func TestImageRequestValidate(t *testing.T) {
	assert.NoError(t, ImageRequest{SourceText: "本文", Tone: ToneLineArt}.Validate())
	assert.ErrorIs(t, ImageRequest{SourceText: "", Tone: ToneLineArt}.Validate(), ErrInvalidRequest)
	assert.ErrorIs(t, ImageRequest{SourceText: "本文", Tone: "oil-paint"}.Validate(), ErrInvalidRequest)
}

func TestStructureRequestValidate(t *testing.T) {
	assert.NoError(t, StructureRequest{SourceText: "本文", DetailLevel: 3, DiagramType: DiagramFlowchart}.Validate())
	assert.NoError(t, StructureRequest{SourceText: "本文", DetailLevel: 1, DiagramType: DiagramSequence}.Validate())
	assert.ErrorIs(t, StructureRequest{SourceText: "", DetailLevel: 3, DiagramType: DiagramFlowchart}.Validate(), ErrInvalidRequest)
	assert.ErrorIs(t, StructureRequest{SourceText: "本文", DetailLevel: 0, DiagramType: DiagramFlowchart}.Validate(), ErrInvalidRequest)
	assert.ErrorIs(t, StructureRequest{SourceText: "本文", DetailLevel: 3, DiagramType: "pie"}.Validate(), ErrInvalidRequest)
}
