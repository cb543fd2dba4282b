package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxSectionChars = 8000

// Lines that usually open a new employment entry: a date range, or a
// "Title at Company" / "Title, Company" shaped heading.
var (
	dateRangePattern = regexp.MustCompile(`(?i)\b(\d{4}(?:[-/.]\d{1,2})?|\d{1,2}[-/.]\d{4})\s*[-–—]\s*(\d{4}(?:[-/.]\d{1,2})?|\d{1,2}[-/.]\d{4}|present|current|now|ongoing)\b`)

	employmentPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^[A-Z][\w .&/-]{2,60}\s+(?:at|@)\s+[A-Z][\w .&,-]{2,60}$`),
		regexp.MustCompile(`(?i)^(senior|junior|lead|principal|staff|chief)?\s*[\w /-]{2,50}(engineer|developer|manager|analyst|consultant|designer|architect|director|specialist|administrator|scientist|intern)\b`),
		regexp.MustCompile(`^[A-Z][\w .&-]{2,60},\s+[A-Z][\w .&-]{2,60}$`),
	}
)

// PrepareExperienceText splits raw experience section text into
// positions and marks each one with a numbered separator so the model
// does not merge adjacent jobs.
func PrepareExperienceText(text string) string {
	lines := strings.Split(text, "\n")
	starts := positionStarts(lines, employmentHeading)
	if len(starts) < 2 {
		// fall back to date-range lines when heading detection finds
		// at most one position
		starts = positionStarts(lines, func(line string) bool {
			return dateRangePattern.MatchString(line)
		})
	}
	if len(starts) < 2 {
		return text
	}

	var b strings.Builder
	position := 0
	startSet := make(map[int]bool, len(starts))
	for _, i := range starts {
		startSet[i] = true
	}
	for i, line := range lines {
		if startSet[i] {
			position++
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "=== EMPLOYMENT POSITION #%d ===\n", position)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// positionStarts collects the lines that open a new position. A run of
// consecutive matching lines (job title followed by the company line)
// counts as one start.
func positionStarts(lines []string, isStart func(string) bool) []int {
	var starts []int
	prevMatched := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		matched := isStart(trimmed)
		if matched && !prevMatched {
			starts = append(starts, i)
		}
		prevMatched = matched
	}
	return starts
}

func employmentHeading(line string) bool {
	if len(line) > 80 {
		return false
	}
	for _, p := range employmentPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

var spaceRun = regexp.MustCompile(`\s+`)

// SanitizeText makes section text safe to embed in a prompt: quotes
// escaped, newlines and tabs flattened to spaces, size bounded.
func SanitizeText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, `"`, `\"`)
	text = spaceRun.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	if len(text) > maxSectionChars {
		text = truncateRunes(text, maxSectionChars) + "... [truncated]"
	}
	return text
}

// truncateRunes cuts at most n bytes off the front of s without
// splitting a multi-byte rune at the boundary.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
