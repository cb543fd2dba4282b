package extract

import (
	"fmt"
	"strings"

	"resume-parser/pkg/docext"
)

const systemPrompt = `You are an expert resume parser. Extract structured information and infer implicit skills.

CRITICAL REQUIREMENTS:
1. Return data in EXACT JSON schema format specified
2. Extract ALL employment positions - each company should be a separate entry
3. Infer skills from technologies mentioned (mark as isInferred=true)
4. Use correct date formats: YYYY-MM for work/education, YYYY-MM-DD for skills
5. Use "current" for ongoing employment, empty string for unknown dates

SKILL INFERENCE RULES (mark as isInferred=true):
- For ANY technology mentioned, infer related foundational skills
- For programming languages, infer: Problem Solving, Debugging, Software Development
- For frameworks and libraries, infer the underlying languages and concepts
- For databases, infer: Data Modeling, Query Optimization, Data Management
- For cloud platforms, infer: Infrastructure Management, Scalability, DevOps
- For job titles, infer role-based skills (a "Senior" title implies Mentoring, Code Review, Technical Leadership; a "Manager" title implies People Management, Strategic Planning)
- For education, infer foundational knowledge areas (a Computer Science degree implies Algorithms, Data Structures)
- You MUST infer at least 3-5 skills for every resume with professional experience

EMPLOYMENT EXTRACTION RULES:
- Look for multiple companies in the experience section and create a separate work experience entry for each
- Do NOT stop after the first employment position; continue until ALL positions are extracted
- Each company gets its own job title, dates and description
- Look for employment position separators (=== EMPLOYMENT POSITION #X ===) in the content; each separated block is a different position

EXPERIENCE CALCULATION:
- Calculate total months of experience from all work history
- Identify management experience from job titles and descriptions
- Determine current management level from the most recent role`

// buildUserPrompt lays out the sanitized section content together with
// document metadata and the per-request extraction requirements.
func buildUserPrompt(doc *docext.Document, content []sectionContent) string {
	var b strings.Builder

	b.WriteString("Please extract structured resume data from the following resume sections:\n\n")
	b.WriteString("INFERENCE TRACKING RULES:\n")
	b.WriteString("- isInferred=false: ONLY for skills explicitly written in the resume (e.g. \"Python\", \"React\")\n")
	b.WriteString("- isInferred=true: for skills you deduce from context\n")
	b.WriteString("- EXAMPLE: resume says \"Senior Engineer\" and \"Python\" -> \"Python\" is explicit (false), \"Mentoring\" is inferred (true)\n\n")

	b.WriteString("DOCUMENT INFO:\n")
	fmt.Fprintf(&b, "- Filename: %s\n", doc.Filename)
	fmt.Fprintf(&b, "- File Type: %s\n", doc.FileType)
	fmt.Fprintf(&b, "- Total Elements: %d\n\n", doc.TotalElements())

	b.WriteString("RESUME SECTIONS:")
	for _, sc := range content {
		fmt.Fprintf(&b, "\n\n=== %s ===\n%s", strings.ToUpper(sc.name), sc.text)
	}

	b.WriteString("\n\nEXTRACTION REQUIREMENTS:\n")
	b.WriteString("1. Extract ALL contact information (name, email, phone, location)\n")
	b.WriteString("2. Identify ALL skills mentioned AND infer related skills\n")
	b.WriteString("3. Extract ALL employment positions; each company is a separate entry\n")
	b.WriteString("4. Include all education and certifications\n")
	b.WriteString("5. Calculate total experience and management experience\n")
	b.WriteString("6. Provide a comprehensive professional summary\n")
	b.WriteString("7. Ensure all data matches the exact JSON schema format")

	return b.String()
}
