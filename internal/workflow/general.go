package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/ddr/internal/oracle"
	"github.com/JaimeStill/ddr/internal/prompts"
	"github.com/JaimeStill/ddr/internal/report"
)

// GeneralNode returns a state node that extracts the general report's text
// and structures it into a DocumentExtraction through the oracle.
func GeneralNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		src, err := get[Sources](s, KeySources)
		if err != nil {
			return s, fmt.Errorf("general: %w", err)
		}

		rt.progress(StepGeneralText)
		text, err := rt.Documents.Text(ctx, src.General)
		if err != nil {
			return s, fmt.Errorf("general: %w: %w", ErrIOFailed, err)
		}

		rt.progress(StepGeneralStructure)
		extraction, err := ExtractGeneral(ctx, rt, text)
		if err != nil {
			return s, fmt.Errorf("general: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "general node complete",
			"observations", len(extraction.Observations),
			"areas", len(extraction.Areas()),
		)

		return s.Set(KeyGeneral, extraction), nil
	})
}

// ExtractGeneral structures the general report text into observations.
// Empty text is valid input.
func ExtractGeneral(ctx context.Context, rt *Runtime, text string) (report.DocumentExtraction, error) {
	schema, err := extractionSchema()
	if err != nil {
		return report.DocumentExtraction{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	instruction, err := ComposeInstruction(prompts.StageGeneral)
	if err != nil {
		return report.DocumentExtraction{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	req := oracle.Request{
		Instruction: instruction,
		Content:     []oracle.Part{oracle.TextPart(text)},
		Schema:      schema,
		Temperature: rt.Settings.ExtractTemperature,
	}

	return extract(ctx, rt, req)
}

func extract(ctx context.Context, rt *Runtime, req oracle.Request) (report.DocumentExtraction, error) {
	extraction, err := oracle.Structured[report.DocumentExtraction](ctx, rt.Oracle, req)
	if err != nil {
		return report.DocumentExtraction{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	if extraction.Observations == nil {
		extraction.Observations = []report.Observation{}
	}

	return extraction, nil
}
