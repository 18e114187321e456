package workflow

import (
	"log/slog"
	"sync"

	"github.com/JaimeStill/ddr/internal/documents"
	"github.com/JaimeStill/ddr/internal/oracle"
	"github.com/JaimeStill/ddr/internal/report"
)

// Settings carries per-stage oracle generation parameters.
type Settings struct {
	ExtractTemperature   float64
	SynthesisTemperature float64
}

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed once by the entry point from the loaded configuration.
type Runtime struct {
	Oracle    oracle.Oracle
	Documents documents.System
	Settings  Settings
	Logger    *slog.Logger
	// Progress, when set, is called before each Step begins.
	Progress func(Step)
}

func (rt *Runtime) progress(step Step) {
	if rt.Progress != nil {
		rt.Progress(step)
	}
}

var (
	extractionSchema  = sync.OnceValues(report.ExtractionSchema)
	finalReportSchema = sync.OnceValues(report.FinalReportSchema)
)
