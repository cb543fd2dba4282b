// Package sections groups extracted document elements into resume sections
// using regex and keyword heuristics.
package sections

import (
	"fmt"
	"regexp"
	"strings"

	"resume-parser/pkg/docext"
)

// Section identifies a region of a resume.
type Section string

const (
	SectionContact        Section = "contact"
	SectionSummary        Section = "summary"
	SectionObjective      Section = "objective"
	SectionSkills         Section = "skills"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
	SectionProjects       Section = "projects"
	SectionAwards         Section = "awards"
	SectionReferences     Section = "references"
	SectionUnknown        Section = "unknown"
)

// Group is a run of elements assigned to one section.
type Group struct {
	Section    Section          `json:"section"`
	Elements   []docext.Element `json:"elements"`
	Confidence float64          `json:"confidence"`
}

// CombinedText joins the text of every element in the group.
func (g Group) CombinedText() string {
	parts := make([]string, 0, len(g.Elements))
	for _, el := range g.Elements {
		parts = append(parts, el.Text)
	}
	return strings.Join(parts, "\n")
}

type sectionPattern struct {
	section Section
	res     []*regexp.Regexp
}

func compile(section Section, patterns ...string) sectionPattern {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile("(?i)"+p))
	}
	return sectionPattern{section: section, res: res}
}

// Header patterns, matched against lowercased trimmed element text.
// Order matters: first match wins.
var sectionPatterns = []sectionPattern{
	compile(SectionContact,
		`^contact\s*(information|info|details)?$`,
		`^personal\s*(information|info|details)$`,
		`^contact\s*me$`),
	compile(SectionSummary,
		`^(professional\s*)?summary$`,
		`^(career\s*)?summary$`,
		`^profile$`,
		`^overview$`,
		`^about\s*(me)?$`,
		`^executive\s*summary$`),
	compile(SectionObjective,
		`^(career\s*)?objective$`,
		`^goal$`,
		`^career\s*goal$`),
	compile(SectionSkills,
		`^(technical\s*)?skills$`,
		`^core\s*competencies$`,
		`^competencies$`,
		`^expertise$`,
		`^technologies$`,
		`^programming\s*languages$`,
		`^tools\s*(and\s*technologies)?$`),
	compile(SectionExperience,
		`^(work\s*|professional\s*)?experience$`,
		`^employment\s*history$`,
		`^career\s*history$`,
		`^work\s*history$`,
		`^professional\s*background$`),
	compile(SectionEducation,
		`^education$`,
		`^academic\s*background$`,
		`^educational\s*background$`,
		`^qualifications$`,
		`^academic\s*qualifications$`),
	compile(SectionCertifications,
		`^certifications?$`,
		`^certificates?$`,
		`^professional\s*certifications?$`,
		`^licenses?\s*(and\s*certifications?)?$`),
	compile(SectionProjects,
		`^projects?$`,
		`^key\s*projects?$`,
		`^notable\s*projects?$`,
		`^selected\s*projects?$`),
	compile(SectionAwards,
		`^awards?$`,
		`^honors?\s*(and\s*awards?)?$`,
		`^achievements?$`,
		`^recognition$`),
	compile(SectionReferences,
		`^references?$`,
		`^professional\s*references?$`,
		`^references?\s*available\s*upon\s*request$`),
}

var contactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),                               // email
	regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),                                                    // US phone
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`),                                                      // US phone with parens
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,14}`),                                                         // international phone
	regexp.MustCompile(`(?i)\b\d{1,5}\s+\w+\s+(street|st|avenue|ave|road|rd|drive|dr|lane|ln|boulevard|blvd)`), // street address
	regexp.MustCompile(`(?i)\b(linkedin\.com/in/|github\.com/|twitter\.com/)`),                             // social profiles
}

// headerCandidateMaxLen filters long narrative paragraphs out of header
// detection while keeping short lines that act as section headers.
const headerCandidateMaxLen = 50

// Grouper assigns elements to resume sections.
type Grouper struct{}

func NewGrouper() *Grouper { return &Grouper{} }

// Group walks the element stream, switching the current section whenever a
// header-like element matches a section pattern. Contact data routes to the
// contact section regardless of position.
func (p *Grouper) Group(elements []docext.Element) []Group {
	buckets := map[Section][]docext.Element{}
	var order []Section
	appendTo := func(s Section, el docext.Element) {
		if _, ok := buckets[s]; !ok {
			order = append(order, s)
		}
		buckets[s] = append(buckets[s], el)
	}

	current := SectionUnknown
	for _, el := range elements {
		if detected := DetectSection(el); detected != SectionUnknown {
			current = detected
		}
		if IsContactElement(el) {
			appendTo(SectionContact, el)
			continue
		}
		appendTo(current, el)
	}

	groups := make([]Group, 0, len(order))
	for _, s := range order {
		els := buckets[s]
		if len(els) == 0 {
			continue
		}
		groups = append(groups, Group{
			Section:    s,
			Elements:   els,
			Confidence: confidence(s, els),
		})
	}
	return groups
}

// DetectSection reports which section an element's text names, if any.
// Only titles, headers and short narrative lines qualify: many resumes
// emit section headers as plain text elements.
func DetectSection(el docext.Element) Section {
	switch el.Type {
	case docext.TypeTitle, docext.TypeHeader:
	case docext.TypeNarrativeText:
		if len(strings.TrimSpace(strings.ToLower(el.Text))) > headerCandidateMaxLen {
			return SectionUnknown
		}
	default:
		return SectionUnknown
	}

	text := strings.TrimSpace(strings.ToLower(el.Text))
	for _, sp := range sectionPatterns {
		for _, re := range sp.res {
			if re.MatchString(text) {
				return sp.section
			}
		}
	}
	return SectionUnknown
}

// IsContactElement reports whether an element carries contact data.
func IsContactElement(el docext.Element) bool {
	switch el.Type {
	case docext.TypeEmailAddress, docext.TypePhoneNumber, docext.TypeAddress:
		return true
	}
	for _, re := range contactPatterns {
		if re.MatchString(el.Text) {
			return true
		}
	}
	return false
}

func confidence(s Section, elements []docext.Element) float64 {
	if len(elements) == 0 {
		return 0
	}
	conf := 0.5
	for _, el := range elements {
		if el.Type == docext.TypeTitle || el.Type == docext.TypeHeader {
			conf += 0.3
			break
		}
	}
	if s == SectionContact {
		for _, el := range elements {
			if el.Type == docext.TypeEmailAddress || el.Type == docext.TypePhoneNumber {
				conf += 0.2
				break
			}
		}
	}
	if s == SectionSkills {
		for _, el := range elements {
			if el.Type == docext.TypeListItem {
				conf += 0.2
				break
			}
		}
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}

// Validate inspects grouped sections and returns warnings about missing
// critical sections or weak classifications.
func Validate(groups []Group) []string {
	var warnings []string
	present := map[Section]bool{}
	for _, g := range groups {
		present[g.Section] = true
	}
	if !present[SectionContact] {
		warnings = append(warnings, "no contact information section detected")
	}
	if !present[SectionExperience] {
		warnings = append(warnings, "no work experience section detected")
	}
	var low []string
	for _, g := range groups {
		if g.Confidence < 0.6 {
			low = append(low, string(g.Section))
		}
	}
	if len(low) > 0 {
		warnings = append(warnings, fmt.Sprintf("low confidence in section classification: %s", strings.Join(low, ", ")))
	}
	return warnings
}

// Find returns the group for a section, if present.
func Find(groups []Group, s Section) (Group, bool) {
	for _, g := range groups {
		if g.Section == s {
			return g, true
		}
	}
	return Group{}, false
}

// Summary reports per-section statistics for a grouped document.
type Summary struct {
	TotalSections     int            `json:"totalSections"`
	SectionsFound     []string       `json:"sectionsFound"`
	ElementCounts     map[string]int `json:"elementCounts"`
	ElementKinds      map[string]int `json:"elementKinds"`
	AverageConfidence float64        `json:"averageConfidence"`
}

func Summarize(groups []Group) Summary {
	sum := Summary{
		TotalSections: len(groups),
		SectionsFound: make([]string, 0, len(groups)),
		ElementCounts: make(map[string]int, len(groups)),
		ElementKinds:  make(map[string]int),
	}
	total := 0.0
	for _, g := range groups {
		name := string(g.Section)
		sum.SectionsFound = append(sum.SectionsFound, name)
		sum.ElementCounts[name] = len(g.Elements)
		for _, el := range g.Elements {
			kind := ClassifyElement(el.Text, g.Section)
			sum.ElementKinds[string(kind)]++
		}
		total += g.Confidence
	}
	if len(groups) > 0 {
		sum.AverageConfidence = total / float64(len(groups))
	}
	return sum
}
