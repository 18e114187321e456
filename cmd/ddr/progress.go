package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/JaimeStill/ddr/internal/workflow"
)

var (
	stepStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func newProgress(w io.Writer) func(workflow.Step) {
	return func(step workflow.Step) {
		if step == workflow.StepRender {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", stepStyle.Render(fmt.Sprintf("%d.", step)), step)
	}
}
