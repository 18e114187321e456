package workflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/ddr/internal/report"
)

const (
	KeyRunID    = "run_id"
	KeyTempDir  = "temp_dir"
	KeySources  = "sources"
	KeyGeneral  = "general_extraction"
	KeyThermal  = "thermal_extraction"
	KeyReport   = "final_report"
	KeyMarkdown = "markdown"
)

// Sources names the two input PDFs for a run.
type Sources struct {
	General string `json:"general"`
	Thermal string `json:"thermal"`
}

// Result is the final output of a workflow execution.
type Result struct {
	RunID       uuid.UUID                 `json:"run_id"`
	Sources     Sources                   `json:"sources"`
	General     report.DocumentExtraction `json:"general"`
	Thermal     report.DocumentExtraction `json:"thermal"`
	Report      report.FinalReport        `json:"report"`
	Markdown    string                    `json:"markdown"`
	CompletedAt time.Time                 `json:"completed_at"`
}

func get[T any](s state.State, key string) (T, error) {
	var zero T

	val, ok := s.Get(key)
	if !ok {
		return zero, fmt.Errorf("missing %s in state", key)
	}

	v, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("%s is not %T", key, zero)
	}

	return v, nil
}
