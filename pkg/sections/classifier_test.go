package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyElementPatterns(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		context Section
		want    ElementKind
	}{
		{"email", "jane@example.com", SectionUnknown, KindContactInfo},
		{"phone", "(555) 123-4567", SectionUnknown, KindContactInfo},
		{"section header", "WORK EXPERIENCE", SectionUnknown, KindSectionHeader},
		{"employment date", "2020 - Present", SectionUnknown, KindEmploymentDate},
		{"job title", "Senior Software Engineer", SectionUnknown, KindJobTitle},
		{"responsibility bullet", "• Developed the billing pipeline", SectionUnknown, KindResponsibility},
		{"achievement with metric", "Increased throughput by 40%", SectionUnknown, KindAchievement},
		{"degree", "Bachelor of Science in Computer Science", SectionUnknown, KindDegree},
		{"school", "Springfield University", SectionUnknown, KindSchoolName},
		{"certification", "AWS Certified Solutions Architect", SectionUnknown, KindCertification},
		{"company", "Acme Technologies Inc", SectionUnknown, KindCompanyName},
		{"skill", "PostgreSQL", SectionUnknown, KindSkillItem},
		{"too short", "x", SectionUnknown, KindGenericText},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyElement(tc.text, tc.context))
		})
	}
}

func TestClassifyElementByContext(t *testing.T) {
	// a bullet with no action verb still reads as a responsibility
	// inside the experience section
	assert.Equal(t, KindResponsibility, ClassifyElement("• owned the release process", SectionExperience))

	// anything inside the skills section is a skill
	assert.Equal(t, KindSkillItem, ClassifyElement("Distributed tracing tooling", SectionSkills))

	// summary section text is a summary
	assert.Equal(t, KindSummary, ClassifyElement("A decade of shipping infrastructure.", SectionSummary))
}

func TestClassifyElementHeuristics(t *testing.T) {
	// short ALL-CAPS line outside any known section reads as a header
	assert.Equal(t, KindSectionHeader, ClassifyElement("VOLUNTEERING", SectionUnknown))

	// a plain sentence stays generic
	assert.Equal(t, KindGenericText, ClassifyElement("worked on several interesting things", SectionUnknown))
}
