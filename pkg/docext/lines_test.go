package docext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementsFromText(t *testing.T) {
	text := "Jane Smith\n\nExperience\n• Built the data pipeline\njane@example.com\n(555) 123-4567\n"
	elements := elementsFromText(text, 1)

	require.Len(t, elements, 5)
	assert.Equal(t, TypeNarrativeText, elements[0].Type)
	assert.Equal(t, TypeTitle, elements[1].Type)
	assert.Equal(t, TypeListItem, elements[2].Type)
	assert.Equal(t, TypeEmailAddress, elements[3].Type)
	assert.Equal(t, TypePhoneNumber, elements[4].Type)

	// blank lines are skipped but line numbers keep the original offsets
	assert.Equal(t, 1, elements[0].Metadata["line_number"])
	assert.Equal(t, 3, elements[1].Metadata["line_number"])
	assert.Equal(t, 1, elements[0].PageNumber)
}

func TestClassifyLine(t *testing.T) {
	cases := []struct {
		line string
		want ElementType
	}{
		{"Education", TypeTitle},
		{"Technical Skills", TypeTitle},
		{"- led migrations", TypeListItem},
		{"* shipped features", TypeListItem},
		{"someone@domain.org", TypeEmailAddress},
		{"(555) 987-6543", TypePhoneNumber},
		{"Shipped the product", TypeNarrativeText},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyLine(tc.line), tc.line)
	}
}
