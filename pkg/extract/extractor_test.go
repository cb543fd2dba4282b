package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/pkg/docext"
	"resume-parser/pkg/llm"
	"resume-parser/pkg/sections"
)

type stubModel struct {
	response  string
	err       error
	gotSystem string
	gotUser   string
	gotFn     llm.FunctionSchema
}

func (m *stubModel) ExtractJSON(ctx context.Context, systemPrompt, userPrompt string, fn llm.FunctionSchema) (string, llm.Usage, error) {
	m.gotSystem = systemPrompt
	m.gotUser = userPrompt
	m.gotFn = fn
	return m.response, llm.Usage{InputTokens: 1200, CachedInputTokens: 200, OutputTokens: 400}, m.err
}

func testDocument() *docext.Document {
	return &docext.Document{
		Filename:      "resume.txt",
		FileExtension: ".txt",
		FileType:      "Text Document",
		Elements: []docext.Element{
			{Type: docext.TypeEmailAddress, Text: "jane@example.com"},
			{Type: docext.TypeTitle, Text: "Experience"},
			{Type: docext.TypeNarrativeText, Text: "Senior Engineer at Acme, 2020-01 - current, built Go services"},
			{Type: docext.TypeTitle, Text: "Skills"},
			{Type: docext.TypeListItem, Text: "• Go"},
		},
	}
}

const modelResponse = `{
	"contactInfo": {"fullName": "Jane Smith", "email": "jane@example.com"},
	"summary": "Senior engineer.",
	"skills": [
		{"name": "Go", "isInferred": true},
		{"name": "Mentoring", "isInferred": false}
	],
	"education": [],
	"workExperience": [
		{"jobTitle": "Senior Engineer", "employer": "Acme", "startDate": "2020-01-15", "endDate": "Present", "description": "built Go services"}
	],
	"certifications": [],
	"experienceSummary": {"totalMonthsExperience": 60, "monthsOfManagementExperience": 0, "currentManagementLevel": "Individual Contributor", "description": "5 years"}
}`

func TestExtract(t *testing.T) {
	model := &stubModel{response: modelResponse}
	uc := NewUseCase(model, "gpt-4o", nil)

	result, err := uc.Extract(context.Background(), testDocument())
	require.NoError(t, err)

	r := result.Resume
	assert.Equal(t, "Jane Smith", r.ContactInfo.FullName)

	// inference post-pass overrides the model's flags using the text
	require.Len(t, r.Skills, 2)
	assert.False(t, r.Skills[0].IsInferred, "Go appears in the resume text")
	assert.True(t, r.Skills[1].IsInferred)
	assert.Equal(t, inferredFromContext, r.Skills[1].InferredFrom)

	// dates normalized
	require.Len(t, r.WorkExperience, 1)
	assert.Equal(t, "2020-01", r.WorkExperience[0].StartDate)
	assert.Equal(t, "current", r.WorkExperience[0].EndDate)

	// metadata filled locally
	assert.Equal(t, "Text Document", r.ParserMetadata.FileType)
	assert.Equal(t, ".txt", r.ParserMetadata.FileExtension)
	assert.NotEmpty(t, r.ParserMetadata.RevisionDate)
	require.NotNil(t, r.ParserMetadata.Culture)
	assert.Equal(t, "en-US", r.ParserMetadata.Culture.CultureInfo)

	// token accounting with cached input split out
	assert.Equal(t, 1200, result.Usage.InputTokens)
	assert.Equal(t, 200, result.Usage.CachedInputTokens)
	assert.Equal(t, "gpt-4o", result.Usage.Model)
	assert.Greater(t, result.Usage.TotalCost, 0.0)

	// section summary present, with per-kind element counts
	assert.Contains(t, result.Sections.SectionsFound, "experience")
	assert.Contains(t, result.Sections.SectionsFound, "contact")
	assert.NotEmpty(t, result.Sections.ElementKinds)
	assert.Greater(t, result.Sections.ElementKinds[string(sections.KindContactInfo)], 0)

	// prompts carried the document content and the forced function
	assert.Equal(t, "extract_resume_data", model.gotFn.Name)
	assert.Contains(t, model.gotUser, "RESUME SECTIONS:")
	assert.Contains(t, model.gotUser, "resume.txt")
	assert.Contains(t, model.gotSystem, "EMPLOYMENT POSITION")
}

func TestExtractFencedResponse(t *testing.T) {
	model := &stubModel{response: "```json\n" + modelResponse + "\n```"}
	uc := NewUseCase(model, "gpt-4o", nil)

	result, err := uc.Extract(context.Background(), testDocument())
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", result.Resume.ContactInfo.FullName)
}

func TestExtractUnparseableResponse(t *testing.T) {
	model := &stubModel{response: "I could not process this resume."}
	uc := NewUseCase(model, "gpt-4o", nil)

	_, err := uc.Extract(context.Background(), testDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode model response")
}

func TestExtractEmptyDocument(t *testing.T) {
	uc := NewUseCase(&stubModel{}, "gpt-4o", nil)
	_, err := uc.Extract(context.Background(), &docext.Document{Filename: "empty.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no section content")
}

func TestExtractAccumulatesUsage(t *testing.T) {
	model := &stubModel{response: modelResponse}
	uc := NewUseCase(model, "gpt-4o", nil)

	_, err := uc.Extract(context.Background(), testDocument())
	require.NoError(t, err)
	_, err = uc.Extract(context.Background(), testDocument())
	require.NoError(t, err)

	total := uc.Usage()
	assert.Equal(t, 2400, total.InputTokens)
	assert.Equal(t, 800, total.OutputTokens)
}

func TestPrepareSectionsAddsSeparators(t *testing.T) {
	doc := testDocument()
	// force a multi-position experience section
	doc.Elements = append(doc.Elements[:3],
		docext.Element{Type: docext.TypeNarrativeText, Text: "Data Engineer"},
		docext.Element{Type: docext.TypeNarrativeText, Text: "Initech, Austin"},
		docext.Element{Type: docext.TypeNarrativeText, Text: "2017-03 - 2019-12"},
	)
	model := &stubModel{response: modelResponse}
	uc := NewUseCase(model, "gpt-4o", nil)

	_, err := uc.Extract(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, strings.Contains(model.gotUser, "EMPLOYMENT POSITION #2"),
		"experience section should carry position separators")
}
