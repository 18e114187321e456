// Package oracle defines the narrow contract through which the pipeline asks a
// generative model for schema-conformant structured output. The model is
// treated as a black box: callers supply an instruction, ordered content, a
// target schema, and a temperature, and receive either a decoded value that
// validates against the schema or an error.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JaimeStill/ddr/pkg/formatting"
)

// Oracle generates raw model output for a structured request.
type Oracle interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Part is one ordered piece of request content: either text or an image
// encoded as a data URI.
type Part struct {
	Text  string
	Image string
}

// TextPart returns a text content part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// ImagePart returns an image content part from a data URI.
func ImagePart(dataURI string) Part {
	return Part{Image: dataURI}
}

// IsImage reports whether the part carries an image.
func (p Part) IsImage() bool {
	return p.Image != ""
}

// Request describes a single structured generation call.
type Request struct {
	Instruction string
	Content     []Part
	Schema      *Schema
	Temperature float64
}

// Text returns the request's text parts joined in order.
func (r Request) Text() string {
	var texts []string
	for _, p := range r.Content {
		if !p.IsImage() {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n\n")
}

// Images returns the request's image data URIs in order.
func (r Request) Images() []string {
	var images []string
	for _, p := range r.Content {
		if p.IsImage() {
			images = append(images, p.Image)
		}
	}
	return images
}

// Validate checks that the request carries an instruction, a schema, and a
// temperature in [0, 1].
func (r Request) Validate() error {
	if strings.TrimSpace(r.Instruction) == "" {
		return fmt.Errorf("%w: instruction required", ErrInvalidRequest)
	}
	if r.Schema == nil {
		return fmt.Errorf("%w: schema required", ErrInvalidRequest)
	}
	if r.Temperature < 0 || r.Temperature > 1 {
		return fmt.Errorf("%w: temperature %v outside [0,1]", ErrInvalidRequest, r.Temperature)
	}
	return nil
}

// Structured sends req to o and decodes the response into T after validating
// it against req.Schema.
func Structured[T any](ctx context.Context, o Oracle, req Request) (T, error) {
	var zero T

	if err := req.Validate(); err != nil {
		return zero, err
	}

	content, err := o.Generate(ctx, req)
	if err != nil {
		return zero, fmt.Errorf("generate %s: %w", req.Schema.Name(), err)
	}

	return Decode[T](content, req.Schema)
}

// Decode extracts the JSON document from content, validates it against
// schema, and unmarshals it into T. Any failure wraps ErrNonConformant.
func Decode[T any](content string, schema *Schema) (T, error) {
	var result T

	data, err := formatting.ExtractJSON(content)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrNonConformant, err)
	}

	if err := schema.Validate(data); err != nil {
		return result, fmt.Errorf("%w: %s: %w", ErrNonConformant, schema.Name(), err)
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("%w: %s: %w", ErrNonConformant, schema.Name(), err)
	}

	return result, nil
}
