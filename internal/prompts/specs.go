package prompts

const extractionSpec = `Field constraints:
- observations: One entry per distinct finding, in the order they appear
  in the source. Return an empty array when the source contains no
  findings.
- area: The physical location exactly as the source names it.
- issue_description: What the source reports for this area, without
  added interpretation.
- severity: One of Low, Medium, or High.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Report only what the source shows or states`

const synthesizeSpec = `Field constraints:
- property_issue_summary: A 2-3 sentence executive summary.
- area_wise_observations: Exactly one entry per distinct area present in
  either dataset.
- conflict_notes: "Not Available" when the datasets agree for the area,
  otherwise a plain description of the disagreement.
- probable_root_cause: "Not Available" unless a dataset explicitly states
  a cause.
- severity_assessment: The overall severity (Low, Medium, or High)
  followed by one sentence of reasoning based on the findings.
- recommended_actions: Ordered list of next steps for the client.
- additional_notes: "Not Available" when there is nothing to add.
- missing_unclear_information: Gaps or ambiguities in the source data.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Use only information present in the two datasets`

var specs = map[Stage]string{
	StageGeneral:    extractionSpec,
	StageThermal:    extractionSpec,
	StageSynthesize: synthesizeSpec,
}

// Spec returns the response specification for a workflow stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
