package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/ddr/internal/oracle"
	"github.com/JaimeStill/ddr/internal/report"
)

// SynthesizeNode returns a state node that merges the general and thermal
// extractions into the FinalReport. It performs a single text-only oracle
// call; no images are needed at this stage.
func SynthesizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		general, err := get[report.DocumentExtraction](s, KeyGeneral)
		if err != nil {
			return s, fmt.Errorf("synthesize: %w", err)
		}

		thermal, err := get[report.DocumentExtraction](s, KeyThermal)
		if err != nil {
			return s, fmt.Errorf("synthesize: %w", err)
		}

		rt.progress(StepSynthesize)

		final, err := Synthesize(ctx, rt, general, thermal)
		if err != nil {
			return s, fmt.Errorf("synthesize: %w", err)
		}

		conflicts := 0
		for _, obs := range final.AreaWiseObservations {
			if obs.HasConflict() {
				conflicts++
			}
		}

		rt.Logger.InfoContext(
			ctx, "synthesize node complete",
			"areas", len(final.AreaWiseObservations),
			"conflicts", conflicts,
			"root_cause_stated", !report.IsNotAvailable(final.ProbableRootCause),
		)

		return s.Set(KeyReport, final), nil
	})
}

// Synthesize merges two extractions into a FinalReport. The merge rules are
// passed verbatim to the oracle; the result is then normalized so sentinel
// fields are canonical and each area appears once.
func Synthesize(ctx context.Context, rt *Runtime, general, thermal report.DocumentExtraction) (report.FinalReport, error) {
	schema, err := finalReportSchema()
	if err != nil {
		return report.FinalReport{}, fmt.Errorf("%w: %w", ErrSynthesisFailed, err)
	}

	instruction, err := ComposeMergeInstruction(general, thermal)
	if err != nil {
		return report.FinalReport{}, fmt.Errorf("%w: %w", ErrSynthesisFailed, err)
	}

	req := oracle.Request{
		Instruction: instruction,
		Schema:      schema,
		Temperature: rt.Settings.SynthesisTemperature,
	}

	final, err := oracle.Structured[report.FinalReport](ctx, rt.Oracle, req)
	if err != nil {
		return report.FinalReport{}, fmt.Errorf("%w: %w", ErrSynthesisFailed, err)
	}

	final = report.Normalize(final)
	final.AreaWiseObservations = report.Consolidate(final.AreaWiseObservations)

	return final, nil
}
