package workflow

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/ddr/internal/report"
)

// Execute runs the report workflow for one pair of source PDFs. It creates a
// temp directory for page images (removed on every exit path), builds the
// linear state graph (general → thermal → synthesize → render), executes it,
// and extracts the Result from the final state.
func Execute(ctx context.Context, rt *Runtime, src Sources) (*Result, error) {
	runID := uuid.New()

	tempDir, err := os.MkdirTemp("", "ddr-"+runID.String()+"-*")
	if err != nil {
		return nil, fmt.Errorf("%w: create temp directory: %w", ErrIOFailed, err)
	}
	defer os.RemoveAll(tempDir)

	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	rt.Logger.InfoContext(
		ctx, "workflow starting",
		"run_id", runID,
		"general", src.General,
		"thermal", src.Thermal,
	)

	initialState := state.New(nil)
	initialState = initialState.Set(KeyRunID, runID)
	initialState = initialState.Set(KeyTempDir, tempDir)
	initialState = initialState.Set(KeySources, src)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

var stages = []struct {
	name string
	node func(*Runtime) state.StateNode
}{
	{"general", GeneralNode},
	{"thermal", ThermalNode},
	{"synthesize", SynthesizeNode},
	{"render", RenderNode},
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("ddr-report")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	for _, st := range stages {
		if err := graph.AddNode(st.name, st.node(rt)); err != nil {
			return nil, err
		}
	}

	for i := 1; i < len(stages); i++ {
		if err := graph.AddEdge(stages[i-1].name, stages[i].name, nil); err != nil {
			return nil, err
		}
	}

	if err := graph.SetEntryPoint(stages[0].name); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint(stages[len(stages)-1].name); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*Result, error) {
	runID, err := get[uuid.UUID](s, KeyRunID)
	if err != nil {
		return nil, err
	}

	src, err := get[Sources](s, KeySources)
	if err != nil {
		return nil, err
	}

	general, err := get[report.DocumentExtraction](s, KeyGeneral)
	if err != nil {
		return nil, err
	}

	thermal, err := get[report.DocumentExtraction](s, KeyThermal)
	if err != nil {
		return nil, err
	}

	final, err := get[report.FinalReport](s, KeyReport)
	if err != nil {
		return nil, err
	}

	md, err := get[string](s, KeyMarkdown)
	if err != nil {
		return nil, err
	}

	return &Result{
		RunID:       runID,
		Sources:     src,
		General:     general,
		Thermal:     thermal,
		Report:      final,
		Markdown:    md,
		CompletedAt: time.Now(),
	}, nil
}
