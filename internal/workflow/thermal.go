package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/ddr/internal/documents"
	"github.com/JaimeStill/ddr/internal/oracle"
	"github.com/JaimeStill/ddr/internal/prompts"
	"github.com/JaimeStill/ddr/internal/report"
)

// ThermalNode returns a state node that renders the thermal report's pages to
// images and extracts temperature anomalies from them through the oracle.
func ThermalNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		src, err := get[Sources](s, KeySources)
		if err != nil {
			return s, fmt.Errorf("thermal: %w", err)
		}

		tempDir, err := get[string](s, KeyTempDir)
		if err != nil {
			return s, fmt.Errorf("thermal: %w", err)
		}

		rt.progress(StepThermal)

		pageDir := filepath.Join(tempDir, "thermal")
		if err := os.MkdirAll(pageDir, 0700); err != nil {
			return s, fmt.Errorf("thermal: %w: create page dir: %w", ErrIOFailed, err)
		}

		pages, err := rt.Documents.Pages(ctx, src.Thermal, pageDir)
		if err != nil {
			return s, fmt.Errorf("thermal: %w: %w", ErrIOFailed, err)
		}

		extraction, err := ExtractThermal(ctx, rt, pages)
		if err != nil {
			return s, fmt.Errorf("thermal: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "thermal node complete",
			"page_count", len(pages),
			"observations", len(extraction.Observations),
			"areas", len(extraction.Areas()),
		)

		return s.Set(KeyThermal, extraction), nil
	})
}

// ExtractThermal sends the ordered page images to the oracle and returns the
// temperature anomalies it finds as observations.
func ExtractThermal(ctx context.Context, rt *Runtime, pages []documents.Page) (report.DocumentExtraction, error) {
	schema, err := extractionSchema()
	if err != nil {
		return report.DocumentExtraction{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	instruction, err := ComposeInstruction(prompts.StageThermal)
	if err != nil {
		return report.DocumentExtraction{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	content := make([]oracle.Part, 0, len(pages))
	for _, page := range pages {
		dataURI, err := rt.Documents.Encode(page)
		if err != nil {
			return report.DocumentExtraction{}, fmt.Errorf("%w: %w", ErrIOFailed, err)
		}
		content = append(content, oracle.ImagePart(dataURI))
	}

	req := oracle.Request{
		Instruction: instruction,
		Content:     content,
		Schema:      schema,
		Temperature: rt.Settings.ExtractTemperature,
	}

	return extract(ctx, rt, req)
}
