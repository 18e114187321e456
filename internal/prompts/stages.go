// Package prompts holds the fixed instructions and response specifications
// for each oracle-backed workflow stage.
package prompts

// Stage identifies an oracle-backed workflow stage.
type Stage string

// Oracle-backed workflow stages.
const (
	StageGeneral    Stage = "general"
	StageThermal    Stage = "thermal"
	StageSynthesize Stage = "synthesize"
)
