package workflow

// Step is a user-facing progress milestone, announced before the work it
// names begins.
type Step int

// Progress steps in execution order.
const (
	StepGeneralText Step = iota + 1
	StepGeneralStructure
	StepThermal
	StepSynthesize
	StepRender
)

var stepMessages = map[Step]string{
	StepGeneralText:      "Extracting text from General Report PDF...",
	StepGeneralStructure: "Structuring General Data via AI...",
	StepThermal:          "Extracting Thermal Data directly from PDF images...",
	StepSynthesize:       "Synthesizing Final DDR...",
	StepRender:           "Generating Client-Ready Markdown Report...",
}

func (s Step) String() string {
	return stepMessages[s]
}
