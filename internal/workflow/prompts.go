package workflow

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JaimeStill/ddr/internal/prompts"
	"github.com/JaimeStill/ddr/internal/report"
)

// ComposeInstruction builds the oracle instruction for a stage: the stage
// instructions, any additional sections in order, then the stage's response
// specification.
func ComposeInstruction(stage prompts.Stage, sections ...string) (string, error) {
	instructions, err := prompts.Instructions(stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := prompts.Spec(stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)

	for _, section := range sections {
		sb.WriteString("\n\n")
		sb.WriteString(section)
	}

	sb.WriteString("\n\n")
	sb.WriteString(spec)

	return sb.String(), nil
}

// ComposeMergeInstruction builds the synthesis instruction embedding both
// extractions as indented JSON followed by the merge rules.
func ComposeMergeInstruction(general, thermal report.DocumentExtraction) (string, error) {
	generalJSON, err := json.MarshalIndent(general, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize general extraction: %w", err)
	}

	thermalJSON, err := json.MarshalIndent(thermal, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize thermal extraction: %w", err)
	}

	var rules strings.Builder
	rules.WriteString("STRICT RULES:")
	for i, rule := range prompts.MergeRules() {
		fmt.Fprintf(&rules, "\n%d. %s", i+1, rule)
	}
	fmt.Fprintf(&rules, "\n\nArea names: %s", prompts.AreaPolicy)

	return ComposeInstruction(
		prompts.StageSynthesize,
		"General Inspection Data:\n"+string(generalJSON),
		"Thermal Inspection Data:\n"+string(thermalJSON),
		rules.String(),
	)
}
