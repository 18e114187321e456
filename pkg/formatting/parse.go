package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed is returned when content cannot be parsed as JSON,
// either directly or from a markdown code fence.
var ErrParseFailed = errors.New("failed to parse response")

var jsonBlockRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// ExtractJSON returns the JSON document carried by content. Content that is
// already valid JSON is returned as-is; otherwise the body of the first
// markdown code fence is used. Returns ErrParseFailed if neither is valid JSON.
func ExtractJSON(content string) ([]byte, error) {
	content = strings.TrimSpace(content)

	if json.Valid([]byte(content)) {
		return []byte(content), nil
	}

	matches := jsonBlockRegex.FindStringSubmatch(content)
	if len(matches) >= 2 {
		cleaned := strings.TrimSpace(matches[1])
		if json.Valid([]byte(cleaned)) {
			return []byte(cleaned), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrParseFailed, content)
}
