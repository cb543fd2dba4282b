package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var trailingComma = regexp.MustCompile(`,\s*([}\]])`)

// CleanModelJSON strips the wrappers models like to add around JSON:
// markdown code fences, leading prose, trailing commas.
func CleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	// keep only the outermost object
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}

	s = trailingComma.ReplaceAllString(s, "$1")
	return s
}

// DecodeModelJSON unmarshals a model response into v, cleaning it first
// and falling back to a gjson validity scan to locate a parseable
// object when the full payload is broken.
func DecodeModelJSON(raw string, v any) error {
	cleaned := CleanModelJSON(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}

	if gjson.Valid(cleaned) {
		// valid JSON but wrong shape for v
		return json.Unmarshal([]byte(cleaned), v)
	}

	// walk back from the end looking for the largest valid prefix;
	// truncated responses usually just lose the tail
	for end := len(cleaned); end > 1; end-- {
		if cleaned[end-1] != '}' {
			continue
		}
		candidate := cleaned[:end]
		if gjson.Valid(candidate) {
			return json.Unmarshal([]byte(candidate), v)
		}
	}
	return fmt.Errorf("response is not valid json")
}
