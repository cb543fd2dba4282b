package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareExperienceTextSeparatesPositions(t *testing.T) {
	text := strings.Join([]string{
		"Senior Software Engineer",
		"Acme Corp, Springfield",
		"2020-01 - current",
		"Built the billing pipeline",
		"Data Engineer",
		"Initech, Austin",
		"2017-03 - 2019-12",
		"Maintained the warehouse",
	}, "\n")

	out := PrepareExperienceText(text)

	assert.Contains(t, out, "=== EMPLOYMENT POSITION #1 ===")
	assert.Contains(t, out, "=== EMPLOYMENT POSITION #2 ===")
	assert.Less(t, strings.Index(out, "POSITION #1"), strings.Index(out, "Acme Corp"))
	assert.Less(t, strings.Index(out, "Acme Corp"), strings.Index(out, "POSITION #2"))
}

func TestPrepareExperienceTextDateFallback(t *testing.T) {
	text := strings.Join([]string{
		"worked on several systems",
		"2015 - 2018 did backend work at a bank",
		"more details about that role",
		"2018 - present freelance consulting",
	}, "\n")

	out := PrepareExperienceText(text)
	assert.Contains(t, out, "POSITION #1")
	assert.Contains(t, out, "POSITION #2")
}

func TestPrepareExperienceTextSinglePositionUnchanged(t *testing.T) {
	text := "one job\nno clear structure here\nnothing to split"
	assert.Equal(t, text, PrepareExperienceText(text))
}

func TestSanitizeText(t *testing.T) {
	out := SanitizeText("said \"hello\"\nnew\tline")
	assert.Equal(t, `said \"hello\" new line`, out)

	assert.Equal(t, "", SanitizeText(""))
}

func TestSanitizeTextTruncates(t *testing.T) {
	long := strings.Repeat("a", maxSectionChars+100)
	out := SanitizeText(long)
	require.True(t, strings.HasSuffix(out, "... [truncated]"))
	assert.Len(t, out, maxSectionChars+len("... [truncated]"))
}

func TestSanitizeTextTruncatesOnRuneBoundary(t *testing.T) {
	// place a two-byte rune so the cut would land mid-rune
	long := strings.Repeat("a", maxSectionChars-1) + strings.Repeat("é", 100)
	out := SanitizeText(long)
	require.True(t, strings.HasSuffix(out, "... [truncated]"))
	assert.True(t, utf8.ValidString(out))
	assert.LessOrEqual(t, len(out), maxSectionChars+len("... [truncated]"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "aé", truncateRunes("aéb", 3))
	// cutting inside é backs up to the previous boundary
	assert.Equal(t, "a", truncateRunes("aéb", 2))
	assert.Equal(t, "ab", truncateRunes("ab", 5))
}
