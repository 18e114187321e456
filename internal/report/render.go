package report

import (
	"fmt"
	"strings"
)

// Title is the top-level heading of every rendered report.
const Title = "Detailed Diagnostic Report (DDR)"

// Section headings in render order.
const (
	SectionSummary      = "Property Issue Summary"
	SectionObservations = "Area-wise Observations"
	SectionRootCause    = "Probable Root Cause"
	SectionSeverity     = "Severity Assessment"
	SectionActions      = "Recommended Actions"
	SectionNotes        = "Additional Notes"
	SectionMissing      = "Missing or Unclear Information"
)

var sections = []string{
	SectionSummary,
	SectionObservations,
	SectionRootCause,
	SectionSeverity,
	SectionActions,
	SectionNotes,
	SectionMissing,
}

// Sections returns the seven section headings in render order.
func Sections() []string {
	return sections
}

// Render serializes r as a client-ready Markdown document. The output is a
// pure function of r: seven numbered second-level sections in fixed order,
// list fields rendered as bullets in input order, and conflict notes emitted
// only when they are not the NotAvailable sentinel.
func Render(r FinalReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", Title)

	heading(&sb, 1)
	fmt.Fprintf(&sb, "%s\n\n", r.PropertyIssueSummary)

	heading(&sb, 2)
	for _, obs := range r.AreaWiseObservations {
		writeObservation(&sb, obs)
	}

	heading(&sb, 3)
	fmt.Fprintf(&sb, "%s\n\n", r.ProbableRootCause)

	heading(&sb, 4)
	fmt.Fprintf(&sb, "%s\n\n", r.SeverityAssessment)

	heading(&sb, 5)
	bullets(&sb, r.RecommendedActions)
	sb.WriteString("\n")

	heading(&sb, 6)
	fmt.Fprintf(&sb, "%s\n\n", r.AdditionalNotes)

	heading(&sb, 7)
	bullets(&sb, r.MissingUnclearInformation)

	return sb.String()
}

func heading(sb *strings.Builder, n int) {
	fmt.Fprintf(sb, "## %d. %s\n", n, sections[n-1])
}

func writeObservation(sb *strings.Builder, obs MergedObservation) {
	fmt.Fprintf(sb, "**%s**\n", obs.Area)
	fmt.Fprintf(sb, "- **Observation:** %s\n", obs.CombinedIssue)
	if obs.HasConflict() {
		fmt.Fprintf(sb, "- **Note:** %s\n", obs.ConflictNotes)
	}
	sb.WriteString("\n")
}

func bullets(sb *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
}
