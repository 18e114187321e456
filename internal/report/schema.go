package report

import (
	"regexp"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/JaimeStill/ddr/internal/oracle"
)

// ExtractionSchema returns the schema oracle responses must satisfy when
// extracting observations from a single source document.
func ExtractionSchema() (*oracle.Schema, error) {
	return oracle.For[DocumentExtraction]("document_extraction", severityPattern)
}

// FinalReportSchema returns the schema oracle responses must satisfy when
// synthesizing the merged report.
func FinalReportSchema() (*oracle.Schema, error) {
	return oracle.For[FinalReport]("final_report")
}

// severityPattern constrains severity to the known levels in any letter
// case. Decoding through Severity.UnmarshalJSON yields the canonical form.
func severityPattern(s *jsonschema.Schema) {
	obs, ok := s.Properties["observations"]
	if !ok || obs.Items == nil {
		return
	}

	sev, ok := obs.Items.Properties["severity"]
	if !ok {
		return
	}

	levels := make([]string, len(Severities()))
	for i, v := range Severities() {
		levels[i] = regexp.QuoteMeta(string(v))
	}
	sev.Enum = nil
	sev.Pattern = "^(?i)(" + strings.Join(levels, "|") + ")$"
}
