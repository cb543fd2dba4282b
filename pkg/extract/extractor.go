// Package extract orchestrates the resume pipeline: grouped document
// sections go in, a populated resume schema with token accounting comes
// out.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resume-parser/pkg/docext"
	"resume-parser/pkg/llm"
	"resume-parser/pkg/resume"
	"resume-parser/pkg/sections"
)

type sectionContent struct {
	name string
	text string
}

// UseCase runs structured extraction over parsed documents.
type UseCase struct {
	model     llm.StructuredModel
	modelName string
	tracker   *llm.UsageTracker
	log       *slog.Logger
}

func NewUseCase(model llm.StructuredModel, modelName string, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{
		model:     model,
		modelName: modelName,
		tracker:   llm.NewUsageTracker(),
		log:       log.With("component", "extract"),
	}
}

// Result is a single completed extraction.
type Result struct {
	Resume   resume.Schema    `json:"resume"`
	Sections sections.Summary `json:"sections"`
	Usage    llm.TokenUsage   `json:"tokenUsage"`
}

// Extract groups the document into sections, sends them through the
// model and assembles the final schema. Warnings from every stage end
// up in parserMetadata.parserWarnings.
func (uc *UseCase) Extract(ctx context.Context, doc *docext.Document) (*Result, error) {
	groups := sections.NewGrouper().Group(doc.Elements)
	content := prepareSections(groups)
	if len(content) == 0 {
		return nil, fmt.Errorf("document %q produced no section content", doc.Filename)
	}

	raw, usage, err := uc.model.ExtractJSON(ctx, systemPrompt, buildUserPrompt(doc, content), functionSchema())
	if err != nil {
		return nil, fmt.Errorf("model extraction: %w", err)
	}

	var schema resume.Schema
	if err := DecodeModelJSON(raw, &schema); err != nil {
		uc.log.Error("model returned unparseable arguments",
			"operation", "extract",
			"filename", doc.Filename,
			"preview", preview(raw, 200))
		return nil, fmt.Errorf("decode model response: %w", err)
	}

	markInferredSkills(schema.Skills, resumeText(doc, groups))
	normWarnings := schema.Normalize()

	warnings := make([]string, 0, len(doc.Warnings)+len(normWarnings))
	warnings = append(warnings, doc.Warnings...)
	warnings = append(warnings, sections.Validate(groups)...)
	warnings = append(warnings, normWarnings...)

	schema.ParserMetadata = resume.ParserMetadata{
		FileType:       doc.FileType,
		FileExtension:  doc.FileExtension,
		RevisionDate:   time.Now().UTC().Format(time.RFC3339),
		ParserWarnings: warnings,
		Culture: &resume.Culture{
			Language:    "en",
			Country:     "US",
			CultureInfo: "en-US",
		},
	}
	schema.EnsureSlices()

	tokens := llm.NewTokenUsage(usage, uc.modelName)
	uc.tracker.Add(tokens)

	uc.log.Info("extraction complete",
		"operation", "extract",
		"filename", doc.Filename,
		"skills", len(schema.Skills),
		"positions", len(schema.WorkExperience),
		"warnings", len(warnings),
		"input_tokens", tokens.InputTokens,
		"output_tokens", tokens.OutputTokens)

	return &Result{
		Resume:   schema,
		Sections: sections.Summarize(groups),
		Usage:    tokens,
	}, nil
}

// Usage returns the cumulative token usage for this use case.
func (uc *UseCase) Usage() llm.TokenUsage {
	return uc.tracker.Total()
}

// prepareSections keeps the grouper's ordering and applies the
// experience preprocessing plus prompt sanitization per section.
func prepareSections(groups []sections.Group) []sectionContent {
	var out []sectionContent
	for _, g := range groups {
		text := strings.TrimSpace(g.CombinedText())
		if text == "" {
			continue
		}
		if g.Section == sections.SectionExperience {
			text = PrepareExperienceText(text)
		}
		out = append(out, sectionContent{
			name: string(g.Section),
			text: SanitizeText(text),
		})
	}
	return out
}

// resumeText is the haystack for explicit-skill matching.
func resumeText(doc *docext.Document, groups []sections.Group) string {
	var parts []string
	for _, g := range groups {
		if t := g.CombinedText(); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		return doc.CombinedText()
	}
	return strings.Join(parts, " ")
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return truncateRunes(s, n) + "..."
}
