package docext

import "strings"

var sectionTitleKeywords = []string{
	"summary", "objective", "profile", "about",
	"experience", "work", "employment", "career",
	"education", "academic", "degree", "university",
	"skills", "competencies", "expertise", "technologies",
	"certifications", "certificates", "licenses",
}

// elementsFromText splits extracted plain text into per-line elements,
// classifying each line by cheap content heuristics. Used by every local
// extractor; the remote API does its own layout analysis.
func elementsFromText(text string, page int) []Element {
	lines := strings.Split(text, "\n")
	elements := make([]Element, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		elements = append(elements, Element{
			Type:       classifyLine(line),
			Text:       line,
			Metadata:   map[string]any{"line_number": i + 1},
			PageNumber: page,
		})
	}
	return elements
}

func classifyLine(line string) ElementType {
	lower := strings.ToLower(line)
	for _, kw := range sectionTitleKeywords {
		if strings.Contains(lower, kw) {
			return TypeTitle
		}
	}
	if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
		return TypeListItem
	}
	if strings.Contains(line, "@") && strings.Contains(line, ".") {
		return TypeEmailAddress
	}
	if strings.ContainsAny(line, "0123456789") && strings.ContainsAny(line, "()-") {
		return TypePhoneNumber
	}
	return TypeNarrativeText
}
