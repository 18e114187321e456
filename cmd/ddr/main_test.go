package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/ddr/internal/config"
	"github.com/JaimeStill/ddr/internal/documents"
	"github.com/JaimeStill/ddr/internal/oracle"
	"github.com/JaimeStill/ddr/internal/report"
	"github.com/JaimeStill/ddr/internal/workflow"
)

type cannedOracle struct {
	responses []string
	calls     int
}

func (o *cannedOracle) Generate(_ context.Context, _ oracle.Request) (string, error) {
	if o.calls >= len(o.responses) {
		return "", fmt.Errorf("unexpected oracle call %d", o.calls+1)
	}
	resp := o.responses[o.calls]
	o.calls++
	return resp, nil
}

type stubDocuments struct {
	textErr error
}

func (d stubDocuments) Text(_ context.Context, _ string) (string, error) {
	return "Kitchen: no issue observed.", d.textErr
}

func (d stubDocuments) Pages(_ context.Context, _ string, dir string) ([]documents.Page, error) {
	return []documents.Page{{Number: 1, ImagePath: filepath.Join(dir, "page-1.png")}}, nil
}

func (d stubDocuments) Encode(page documents.Page) (string, error) {
	return fmt.Sprintf("data:image/png;base64,PAGE%d", page.Number), nil
}

const (
	generalJSON = `{"observations":[{"area":"Kitchen","issue_description":"No issue observed","severity":"Low"}]}`
	thermalJSON = `{"observations":[{"area":"Kitchen","issue_description":"Heat loss at window","severity":"medium"}]}`
	reportJSON  = `{
  "property_issue_summary": "The kitchen window is losing heat.",
  "area_wise_observations": [
    {"area": "Kitchen", "combined_issue": "Heat escapes around the window.", "conflict_notes": "Visual report found no issue; thermal scan shows heat loss."}
  ],
  "probable_root_cause": "Not Available",
  "severity_assessment": "Medium. Heat loss raises energy costs.",
  "recommended_actions": ["Check the window seals."],
  "additional_notes": "Not Available",
  "missing_unclear_information": []
}`
)

func testRuntime(o oracle.Oracle, docs documents.System) *workflow.Runtime {
	return &workflow.Runtime{
		Oracle:    o,
		Documents: docs,
		Settings: workflow.Settings{
			ExtractTemperature:   0.1,
			SynthesisTemperature: 0.2,
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func testFiles(dir string) config.FilesConfig {
	return config.FilesConfig{
		General: filepath.Join(dir, config.DefaultGeneralReport),
		Thermal: filepath.Join(dir, config.DefaultThermalReport),
		Output:  filepath.Join(dir, config.DefaultOutputReport),
	}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("writes report and prints success", func(t *testing.T) {
		dir := t.TempDir()
		files := testFiles(dir)
		o := &cannedOracle{responses: []string{generalJSON, thermalJSON, reportJSON}}

		var out bytes.Buffer
		require.NoError(t, generate(ctx, testRuntime(o, stubDocuments{}), files, &out))

		data, err := os.ReadFile(files.Output)
		require.NoError(t, err)
		md := string(data)
		assert.True(t, strings.HasPrefix(md, "# "+report.Title))
		assert.Contains(t, md, "- **Note:** Visual report found no issue; thermal scan shows heat loss.")
		assert.Contains(t, md, "## 3. Probable Root Cause\nNot Available")

		assert.Contains(t, out.String(), fmt.Sprintf("Report saved as '%s' in your current directory.", files.Output))
		assert.Equal(t, 3, o.calls)
	})

	t.Run("stage failure leaves no output", func(t *testing.T) {
		dir := t.TempDir()
		files := testFiles(dir)
		o := &cannedOracle{}

		var out bytes.Buffer
		err := generate(ctx, testRuntime(o, stubDocuments{textErr: documents.ErrUnreadable}), files, &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, workflow.ErrIOFailed)

		_, statErr := os.Stat(files.Output)
		assert.True(t, errors.Is(statErr, os.ErrNotExist))
		assert.NotContains(t, out.String(), "Report saved")
		assert.Zero(t, o.calls)
	})

	t.Run("synthesis failure leaves no output", func(t *testing.T) {
		dir := t.TempDir()
		files := testFiles(dir)
		o := &cannedOracle{responses: []string{generalJSON, thermalJSON, "I could not merge these."}}

		err := generate(ctx, testRuntime(o, stubDocuments{}), files, io.Discard)
		assert.ErrorIs(t, err, workflow.ErrSynthesisFailed)

		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})

	t.Run("unwritable output is an i/o failure", func(t *testing.T) {
		dir := t.TempDir()
		files := testFiles(dir)
		files.Output = filepath.Join(dir, "missing", config.DefaultOutputReport)
		o := &cannedOracle{responses: []string{generalJSON, thermalJSON, reportJSON}}

		var out bytes.Buffer
		err := generate(ctx, testRuntime(o, stubDocuments{}), files, &out)
		assert.ErrorIs(t, err, workflow.ErrIOFailed)
		assert.NotContains(t, out.String(), "Report saved")
	})
}

func TestNewRuntime(t *testing.T) {
	synthesis := 0.4
	cfg := &config.Config{
		Workflow: config.WorkflowConfig{SynthesisTemperature: &synthesis},
		Render:   documents.Config{DPI: 150, MaxImageSize: "20MB"},
	}

	rt := newRuntime(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	assert.Equal(t, config.DefaultExtractTemperature, rt.Settings.ExtractTemperature)
	assert.Equal(t, 0.4, rt.Settings.SynthesisTemperature)
	assert.NotNil(t, rt.Oracle)
	assert.NotNil(t, rt.Documents)
}
