// Package workflow implements the report pipeline as a linear state graph:
// general → thermal → synthesize → render. The general and thermal nodes
// extract observations from one source each, synthesize merges them into a
// FinalReport through the oracle, and render produces the Markdown document.
package workflow

import "errors"

// Sentinel errors for workflow operations. Every failure is fatal to the run.
var (
	ErrIOFailed         = errors.New("i/o failure")
	ErrExtractionFailed = errors.New("extraction failed")
	ErrSynthesisFailed  = errors.New("synthesis failed")
)
