package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSeverity is returned when a severity value is not Low, Medium, or High.
var ErrInvalidSeverity = errors.New("severity must be Low, Medium, or High")

// Severity is the categorical weight of an observation.
type Severity string

// Severity levels.
const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

var severities = []Severity{
	SeverityLow,
	SeverityMedium,
	SeverityHigh,
}

// Severities returns the valid severity levels in ascending order.
func Severities() []Severity {
	return severities
}

// ParseSeverity matches s case-insensitively against the known levels
// and returns the canonical spelling.
func ParseSeverity(s string) (Severity, error) {
	s = strings.TrimSpace(s)
	for _, v := range severities {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSeverity, s)
}

// UnmarshalJSON validates that the decoded string is a known severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseSeverity(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
