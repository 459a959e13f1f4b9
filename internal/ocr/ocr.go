// Package ocr feeds recognized image text through a wordfix mode.
package ocr

import (
	"context"
	"fmt"

	"wordfix/internal/wordfix"
)

// Input is a single image submitted for recognition.
type Input struct {
	ID string
	// Image is the encoded payload (PNG, JPEG, TIFF).
	Image []byte
	// Languages are trained-data names such as "eng".
	Languages []string
}

// Recognizer turns an image into plain text.
type Recognizer interface {
	Name() string
	Recognize(ctx context.Context, in Input) (string, error)
}

// ModelSource hands out the model to use for the next document.
type ModelSource interface {
	Model() *wordfix.Model
}

// Result pairs the raw recognized text with its repaired form.
type Result struct {
	InputID string
	Raw     string
	Fixed   string
	Mode    wordfix.Mode
}

type Pipeline struct {
	rec    Recognizer
	models ModelSource
}

func NewPipeline(rec Recognizer, models ModelSource) *Pipeline {
	return &Pipeline{rec: rec, models: models}
}

// Process recognizes in and repairs the text with mode.
func (p *Pipeline) Process(ctx context.Context, in Input, mode wordfix.Mode) (Result, error) {
	raw, err := p.rec.Recognize(ctx, in)
	if err != nil {
		return Result{}, fmt.Errorf("%s: recognize %s: %w", p.rec.Name(), in.ID, err)
	}
	fixed, err := p.models.Model().Apply(mode, raw)
	if err != nil {
		return Result{}, err
	}
	return Result{InputID: in.ID, Raw: raw, Fixed: fixed, Mode: mode}, nil
}

// ProcessBatch handles inputs in order and stops at the first failure.
func (p *Pipeline) ProcessBatch(ctx context.Context, inputs []Input, mode wordfix.Mode) ([]Result, error) {
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res, err := p.Process(ctx, in, mode)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
