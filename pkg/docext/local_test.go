package docext

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractDocxText(t *testing.T) {
	xml := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Jane Smith</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Experience</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Acme</w:t><w:tab/><w:t>2020</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text, err := extractDocxText(buildDocx(t, xml))
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Smith")
	assert.Contains(t, text, "Experience")
	// paragraphs become separate lines
	assert.NotContains(t, text, "Jane Smith Experience")
}

func TestExtractDocxTextMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = extractDocxText(buf.Bytes())
	assert.Error(t, err)
}

func TestExtractHTMLText(t *testing.T) {
	html := `<html><head><style>p { color: red }</style>
<script>alert("nope")</script></head>
<body><nav>Home | About</nav>
<h1>Jane Smith</h1>
<p>Senior Engineer</p>
<ul><li>Go</li><li>PostgreSQL</li></ul>
</body></html>`

	text, err := extractHTMLText([]byte(html))
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Smith")
	assert.Contains(t, text, "Senior Engineer")
	assert.Contains(t, text, "Go")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Home | About")
}

func TestExtractHTMLTextBodyFallback(t *testing.T) {
	text, err := extractHTMLText([]byte("<html><body>just plain words</body></html>"))
	require.NoError(t, err)
	assert.Equal(t, "just plain words", text)
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "a\t\tb  c\n\n\nd e"
	assert.Equal(t, "a b c\nd e", normalizeWhitespace(in))
}

func TestExtractorLocalTxt(t *testing.T) {
	e := NewExtractor(nil)
	doc, err := e.Extract(context.Background(), []byte("Jane Smith\nExperience\nAcme Corp"), "resume.txt")
	require.NoError(t, err)

	assert.Equal(t, "resume.txt", doc.Filename)
	assert.Equal(t, ".txt", doc.FileExtension)
	assert.Equal(t, "Text Document", doc.FileType)
	assert.Equal(t, 3, doc.TotalElements())
	require.Len(t, doc.Warnings, 1)
	assert.Contains(t, doc.Warnings[0], "plain text extraction")
}

func TestExtractorRejectsLegacyDoc(t *testing.T) {
	e := NewExtractor(nil)
	_, err := e.Extract(context.Background(), []byte{0xd0, 0xcf, 0x11, 0xe0}, "resume.doc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hosted extraction api")
}

func TestMeaningfulContent(t *testing.T) {
	long := []Element{{Text: "This resume describes a decade of production engineering work in Go."}}
	assert.True(t, meaningfulContent(long))

	assert.False(t, meaningfulContent(nil))
	assert.False(t, meaningfulContent([]Element{{Text: ". . . . ."}}))
	assert.False(t, meaningfulContent([]Element{{Text: "short"}}))
}

func TestDecodeTextLatin1(t *testing.T) {
	assert.Equal(t, "résumé", decodeText([]byte{'r', 0xe9, 's', 'u', 'm', 0xe9}))
	assert.Equal(t, "plain", decodeText([]byte("plain")))
}
