package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanModelJSONStripsFences(t *testing.T) {
	raw := "```json\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanModelJSON(raw))

	raw = "```\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanModelJSON(raw))
}

func TestCleanModelJSONTrimsProse(t *testing.T) {
	raw := `Here is the extracted data: {"a": 1} hope that helps`
	assert.Equal(t, `{"a": 1}`, CleanModelJSON(raw))
}

func TestCleanModelJSONRemovesTrailingCommas(t *testing.T) {
	raw := `{"a": 1, "b": [1, 2,], }`
	assert.Equal(t, `{"a": 1, "b": [1, 2]}`, CleanModelJSON(raw))
}

func TestDecodeModelJSON(t *testing.T) {
	var v struct {
		Summary string `json:"summary"`
	}
	err := DecodeModelJSON("```json\n{\"summary\": \"ok\",}\n```", &v)
	require.NoError(t, err)
	assert.Equal(t, "ok", v.Summary)
}

func TestDecodeModelJSONSalvagesNoisyTail(t *testing.T) {
	// an extra closing brace after the real object
	raw := `{"summary": "ok"}}`
	var v struct {
		Summary string `json:"summary"`
	}
	err := DecodeModelJSON(raw, &v)
	require.NoError(t, err)
	assert.Equal(t, "ok", v.Summary)
}

func TestDecodeModelJSONTruncatedWithoutClosingBrace(t *testing.T) {
	raw := `{"summary": "ok", "broken": "unterminat`
	var v map[string]any
	assert.Error(t, DecodeModelJSON(raw, &v))
}

func TestDecodeModelJSONRejectsGarbage(t *testing.T) {
	var v map[string]any
	assert.Error(t, DecodeModelJSON("not json at all", &v))
}
