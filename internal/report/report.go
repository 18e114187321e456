// Package report defines the inspection data model shared by the extraction,
// synthesis, and rendering stages, and renders the final Detailed Diagnostic
// Report (DDR) as Markdown.
package report

import "strings"

// NotAvailable is the sentinel for information that is explicitly absent.
const NotAvailable = "Not Available"

// IsNotAvailable reports whether s is empty or, ignoring case and
// surrounding whitespace, equal to the NotAvailable sentinel.
func IsNotAvailable(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, NotAvailable)
}

// Observation is a single area/issue/severity finding from one source document.
type Observation struct {
	Area             string   `json:"area" jsonschema:"The physical location, e.g. 'Master Bedroom'"`
	IssueDescription string   `json:"issue_description" jsonschema:"What is wrong in this area"`
	Severity         Severity `json:"severity" jsonschema:"Low, Medium, or High"`
}

// DocumentExtraction holds the observations extracted from one source document.
// An empty Observations slice is a valid extraction.
type DocumentExtraction struct {
	Observations []Observation `json:"observations"`
}

// Areas returns the distinct normalized area keys in first-seen order.
func (d DocumentExtraction) Areas() []string {
	seen := make(map[string]bool, len(d.Observations))
	var keys []string
	for _, o := range d.Observations {
		k := AreaKey(o.Area)
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

// MergedObservation is the combined finding for one area across both sources.
// ConflictNotes is NotAvailable or a description of a contradiction between
// the sources for this area.
type MergedObservation struct {
	Area          string `json:"area"`
	CombinedIssue string `json:"combined_issue"`
	ConflictNotes string `json:"conflict_notes" jsonschema:"Mention 'Not Available' or note any conflicts between reports here."`
}

// HasConflict reports whether the entry carries a conflict note.
func (m MergedObservation) HasConflict() bool {
	return !IsNotAvailable(m.ConflictNotes)
}

// FinalReport is the merged DDR structure produced by synthesis and consumed
// by Render.
type FinalReport struct {
	PropertyIssueSummary      string              `json:"property_issue_summary" jsonschema:"A 2-3 sentence executive summary."`
	AreaWiseObservations      []MergedObservation `json:"area_wise_observations"`
	ProbableRootCause         string              `json:"probable_root_cause" jsonschema:"Must be 'Not Available' if not explicitly stated in the source documents."`
	SeverityAssessment        string              `json:"severity_assessment" jsonschema:"State the severity (Low, Medium, High) and provide a 1-sentence reasoning based on the findings."`
	RecommendedActions        []string            `json:"recommended_actions"`
	AdditionalNotes           string              `json:"additional_notes"`
	MissingUnclearInformation []string            `json:"missing_unclear_information"`
}
