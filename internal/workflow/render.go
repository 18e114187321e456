package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/ddr/internal/report"
)

// RenderNode returns a state node that renders the FinalReport as Markdown.
func RenderNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		final, err := get[report.FinalReport](s, KeyReport)
		if err != nil {
			return s, fmt.Errorf("render: %w", err)
		}

		rt.progress(StepRender)
		md := report.Render(final)

		rt.Logger.InfoContext(
			ctx, "render node complete",
			"bytes", len(md),
		)

		return s.Set(KeyMarkdown, md), nil
	})
}
