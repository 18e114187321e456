// Package formatting parses model output and formats human-readable values
// such as byte sizes.
package formatting

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

const unitBase = 1024

var units = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

var bytesPattern = regexp.MustCompile(`^(\d+(?:\.\d*)?)\s*([A-Za-z]*)$`)

// FormatBytes renders n with the largest base-1024 unit that keeps the value
// at or above 1. Negative precision is treated as zero.
func FormatBytes(n int64, precision int) string {
	if n == 0 {
		return "0 B"
	}

	precision = max(precision, 0)

	size := float64(n)
	i := 0
	for size >= unitBase && i < len(units)-1 {
		size /= unitBase
		i++
	}

	return strconv.FormatFloat(size, 'f', precision, 64) + " " + units[i]
}

// ParseBytes parses a size such as "20MB" or "512 kb" into a byte count.
// A bare number is bytes; units are matched case-insensitively.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size string")
	}

	m := bytesPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size number: %w", err)
	}

	unit := strings.ToUpper(m[2])
	if unit == "" {
		unit = "B"
	}

	idx := slices.Index(units, unit)
	if idx == -1 {
		return 0, fmt.Errorf("unknown byte size unit: %q", unit)
	}

	for range idx {
		value *= unitBase
	}

	return int64(value), nil
}
