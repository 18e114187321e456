package prompts

const generalInstructions = `Extract all property observations from this inspection report. Do not invent details.`

const thermalInstructions = `Analyze these thermal images and any associated text. Extract all temperature anomalies as observations.`

const synthesizeInstructions = `You are an expert Property Diagnostic Analyst. Merge the following two inspection datasets into a single Detailed Diagnostic Report (DDR).`

var instructions = map[Stage]string{
	StageGeneral:    generalInstructions,
	StageThermal:    thermalInstructions,
	StageSynthesize: synthesizeInstructions,
}

// Instructions returns the fixed instructions for a workflow stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Instructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}

var mergeRules = []string{
	"Combine observations for the same 'area'. Do not duplicate points.",
	"If visual data contradicts thermal data, explicitly note this in 'conflict_notes'.",
	"DO NOT invent root causes. If not explicitly stated, output 'Not Available' for 'probable_root_cause'.",
	"Use simple, client-friendly language. Remove technical jargon.",
}

// MergeRules returns the rules the synthesis stage passes verbatim to the
// oracle, in order.
func MergeRules() []string {
	return mergeRules
}

// AreaPolicy describes when two area names refer to the same area.
const AreaPolicy = `Treat area names that differ only in letter case, spacing, or surrounding punctuation as the same area. Keep qualified names such as "Bedroom" and "Master Bedroom" as separate areas.`
