package report_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/ddr/internal/report"
)

var headingPattern = regexp.MustCompile(`(?m)^## \d+\. (.+)$`)

func sampleReport() report.FinalReport {
	return report.FinalReport{
		PropertyIssueSummary: "The property shows moisture in two rooms.",
		AreaWiseObservations: []report.MergedObservation{
			{Area: "Kitchen", CombinedIssue: "Heat loss at the window.", ConflictNotes: "Visual report found no issue; thermal scan shows heat loss."},
			{Area: "Master Bedroom", CombinedIssue: "Damp patch on the ceiling.", ConflictNotes: report.NotAvailable},
			{Area: "Hall", CombinedIssue: "Cracked skirting board.", ConflictNotes: ""},
		},
		ProbableRootCause:         report.NotAvailable,
		SeverityAssessment:        "Medium. Moisture is present but limited to two rooms.",
		RecommendedActions:        []string{"Reseal the kitchen window.", "Inspect the roof above the bedroom."},
		AdditionalNotes:           "Not Available",
		MissingUnclearInformation: []string{"Roof condition was not inspected."},
	}
}

func TestRender(t *testing.T) {
	t.Run("emits seven headings in fixed order", func(t *testing.T) {
		md := report.Render(sampleReport())

		var got []string
		for _, m := range headingPattern.FindAllStringSubmatch(md, -1) {
			got = append(got, m[1])
		}
		assert.Equal(t, report.Sections(), got)
		assert.Len(t, got, 7)
	})

	t.Run("starts with the report title", func(t *testing.T) {
		md := report.Render(sampleReport())
		assert.True(t, strings.HasPrefix(md, "# Detailed Diagnostic Report (DDR)\n\n"))
	})

	t.Run("renders one subsection per area in order", func(t *testing.T) {
		r := sampleReport()
		md := report.Render(r)

		areaPattern := regexp.MustCompile(`(?m)^\*\*(.+)\*\*$`)
		var areas []string
		for _, m := range areaPattern.FindAllStringSubmatch(md, -1) {
			areas = append(areas, m[1])
		}
		assert.Equal(t, []string{"Kitchen", "Master Bedroom", "Hall"}, areas)
		assert.Equal(t, len(r.AreaWiseObservations), strings.Count(md, "- **Observation:** "))
	})

	t.Run("conflict note only when not the sentinel", func(t *testing.T) {
		md := report.Render(sampleReport())

		assert.Equal(t, 1, strings.Count(md, "- **Note:** "))
		assert.Contains(t, md, "- **Note:** Visual report found no issue; thermal scan shows heat loss.\n")
		assert.NotContains(t, md, "- **Note:** Not Available")
	})

	t.Run("sentinel comparison ignores case and padding", func(t *testing.T) {
		r := report.FinalReport{
			AreaWiseObservations: []report.MergedObservation{
				{Area: "Attic", CombinedIssue: "Gap in insulation.", ConflictNotes: "NOT AVAILABLE"},
				{Area: "Garage", CombinedIssue: "Cold spot near door.", ConflictNotes: "  not available "},
				{Area: "Porch", CombinedIssue: "Loose railing.", ConflictNotes: " \t\n"},
			},
		}
		md := report.Render(r)
		assert.NotContains(t, md, "**Note:**")
	})

	t.Run("area block layout", func(t *testing.T) {
		md := report.Render(sampleReport())
		want := "**Kitchen**\n" +
			"- **Observation:** Heat loss at the window.\n" +
			"- **Note:** Visual report found no issue; thermal scan shows heat loss.\n\n" +
			"**Master Bedroom**\n" +
			"- **Observation:** Damp patch on the ceiling.\n\n"
		assert.Contains(t, md, want)
	})

	t.Run("lists render as bullets in order", func(t *testing.T) {
		md := report.Render(sampleReport())
		assert.Contains(t, md, "## 5. Recommended Actions\n- Reseal the kitchen window.\n- Inspect the roof above the bedroom.\n\n")
		assert.True(t, strings.HasSuffix(md, "## 7. Missing or Unclear Information\n- Roof condition was not inspected.\n"))
	})

	t.Run("empty recommended actions keeps heading with empty body", func(t *testing.T) {
		r := sampleReport()
		r.RecommendedActions = nil
		md := report.Render(r)

		assert.Contains(t, md, "## 5. Recommended Actions\n\n## 6. Additional Notes\n")
	})

	t.Run("verbatim scalar sections", func(t *testing.T) {
		md := report.Render(sampleReport())
		assert.Contains(t, md, "## 1. Property Issue Summary\nThe property shows moisture in two rooms.\n\n")
		assert.Contains(t, md, "## 3. Probable Root Cause\nNot Available\n\n")
		assert.Contains(t, md, "## 4. Severity Assessment\nMedium. Moisture is present but limited to two rooms.\n\n")
	})

	t.Run("zero value still renders every section", func(t *testing.T) {
		md := report.Render(report.FinalReport{})
		require.Len(t, headingPattern.FindAllString(md, -1), 7)
		assert.NotContains(t, md, "**Observation:**")
	})

	t.Run("idempotent", func(t *testing.T) {
		r := sampleReport()
		assert.Equal(t, report.Render(r), report.Render(r))
	})
}

func TestIsNotAvailable(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Not Available", true},
		{"not available", true},
		{" NOT AVAILABLE\n", true},
		{"", true},
		{"   ", true},
		{"Not Available yet", false},
		{"Visual and thermal disagree", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, report.IsNotAvailable(tt.in))
		})
	}
}
