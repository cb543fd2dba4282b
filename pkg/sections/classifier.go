package sections

import (
	"regexp"
	"strings"
)

// ElementKind is a resume-specific refinement of the generic element types:
// what a line of text IS within a resume, not just how it was laid out.
type ElementKind string

const (
	KindContactInfo    ElementKind = "contact_info"
	KindSummary        ElementKind = "professional_summary"
	KindJobTitle       ElementKind = "job_title"
	KindCompanyName    ElementKind = "company_name"
	KindEmploymentDate ElementKind = "employment_date"
	KindResponsibility ElementKind = "job_responsibility"
	KindAchievement    ElementKind = "achievement"
	KindSkillItem      ElementKind = "skill_item"
	KindDegree         ElementKind = "education_degree"
	KindSchoolName     ElementKind = "school_name"
	KindCertification  ElementKind = "certification_name"
	KindSectionHeader  ElementKind = "section_header"
	KindBulletPoint    ElementKind = "bullet_point"
	KindGenericText    ElementKind = "generic_text"
)

var kindPatterns = []struct {
	kind ElementKind
	res  []*regexp.Regexp
}{
	{KindContactInfo, compileAll(
		`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`,
		`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`,
		`(?i)linkedin\.com/in/[\w-]+`,
		`(?i)github\.com/[\w-]+`,
	)},
	{KindSectionHeader, compileAll(
		`(?i)^\s*(EXPERIENCE|WORK EXPERIENCE|PROFESSIONAL EXPERIENCE|EMPLOYMENT HISTORY)\s*$`,
		`(?i)^\s*(EDUCATION|ACADEMIC BACKGROUND|QUALIFICATIONS)\s*$`,
		`(?i)^\s*(SKILLS|TECHNICAL SKILLS|COMPETENCIES|TECHNOLOGIES)\s*$`,
		`(?i)^\s*(CERTIFICATIONS|CERTIFICATES|LICENSES)\s*$`,
		`(?i)^\s*(SUMMARY|OBJECTIVE|PROFILE|OVERVIEW)\s*$`,
	)},
	{KindEmploymentDate, compileAll(
		`\b(?:\d{1,2}/\d{4}|\w+\s+\d{4})\s*[-–]\s*(?:\d{1,2}/\d{4}|\w+\s+\d{4}|Present|Current)\b`,
		`\b\d{4}\s*[-–]\s*(?:\d{4}|Present|Current)\b`,
	)},
	{KindJobTitle, compileAll(
		`(?i)\b(Senior|Lead|Principal|Staff|Chief|Head of|Director of|VP of)\s+[A-Za-z\s]+\b`,
		`(?i)\b(Software|Web|Mobile|Data|Systems|Network|Security|DevOps|Full Stack|Frontend|Backend)\s+[A-Za-z\s]*(Engineer|Developer)\b`,
	)},
	{KindResponsibility, compileAll(
		`(?i)^\s*[•\-\*]\s*(Developed|Implemented|Designed|Created|Built|Managed|Led|Coordinated|Collaborated|Responsible for)\b`,
		`(?i)^\s*(Developed|Implemented|Designed|Created|Built|Managed|Led|Coordinated|Collaborated|Responsible for)\b`,
	)},
	{KindAchievement, compileAll(
		`(?i)^\s*[•\-\*]?\s*(Achieved|Accomplished|Increased|Decreased|Improved|Reduced|Optimized|Enhanced)\b.*\b(\d+%|\$\d+|by \d+)`,
	)},
	{KindDegree, compileAll(
		`(?i)\b(Bachelor|Master|PhD|B\.S\.|M\.S\.|B\.A\.|M\.A\.|MBA|Ph\.D\.|Associate)\b.*?(in|of)\s+[A-Za-z\s]+`,
	)},
	{KindSchoolName, compileAll(
		`\b[A-Z][a-zA-Z\s]+(University|College|Institute|School)\b`,
		`\b(University|College|Institute|School)\s+of\s+[A-Za-z\s]+\b`,
	)},
	{KindCertification, compileAll(
		`(?i)\b(AWS|Azure|Google|Oracle|Microsoft|Cisco|CompTIA|PMP|Scrum Master|CISSP)\b.*?(Certified|Certification|Certificate)`,
	)},
	{KindCompanyName, compileAll(
		`\b[A-Z][a-zA-Z\s&.,]*(Inc|LLC|Corp|Ltd|Co|Company|Corporation|Technologies|Systems|Solutions|Consulting|Services)\b`,
	)},
	{KindSkillItem, compileAll(
		`(?i)\b(Python|Java|JavaScript|TypeScript|C\+\+|C#|Ruby|PHP|Go|Rust|Swift|Kotlin|Scala)\b`,
		`(?i)\b(React|Angular|Vue|Django|Flask|Spring|Express|Laravel|Rails)\b`,
		`(?i)\b(MySQL|PostgreSQL|MongoDB|Redis|Oracle|SQLite|Cassandra|DynamoDB)\b`,
		`(?i)\b(AWS|Azure|GCP|Google Cloud|Docker|Kubernetes|Jenkins|Git|GitHub)\b`,
	)},
}

var (
	bulletRe  = regexp.MustCompile(`^\s*([•\-\*\+]\s+|\d+\.\s+)`)
	phoneRe   = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)
	metricsRe = regexp.MustCompile(`(?i)\b(\d+%|\$\d+|by \d+|increased|decreased|improved|reduced)\b`)
)

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(p))
	}
	return res
}

// ClassifyElement assigns a resume-specific kind to a text fragment.
// Pattern rules run first, then section-context rules, then heuristics.
func ClassifyElement(text string, context Section) ElementKind {
	text = strings.TrimSpace(text)
	if len(text) < 2 {
		return KindGenericText
	}
	for _, kp := range kindPatterns {
		for _, re := range kp.res {
			if re.MatchString(text) {
				return kp.kind
			}
		}
	}
	if kind := classifyByContext(text, context); kind != KindGenericText {
		return kind
	}
	return classifyByHeuristics(text)
}

func classifyByContext(text string, context Section) ElementKind {
	switch context {
	case SectionExperience:
		if bulletRe.MatchString(text) {
			return KindResponsibility
		}
	case SectionEducation:
		lower := strings.ToLower(text)
		for _, ind := range []string{"bachelor", "master", "phd", "mba", "associate", "degree", "diploma"} {
			if strings.Contains(lower, ind) {
				return KindDegree
			}
		}
		for _, ind := range []string{"university", "college", "institute", "school"} {
			if strings.Contains(lower, ind) {
				return KindSchoolName
			}
		}
	case SectionSkills:
		return KindSkillItem
	case SectionSummary, SectionObjective:
		return KindSummary
	}
	return KindGenericText
}

func classifyByHeuristics(text string) ElementKind {
	if bulletRe.MatchString(text) {
		return KindBulletPoint
	}
	if text == strings.ToUpper(text) && len(strings.Fields(text)) <= 4 && strings.ContainsAny(text, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return KindSectionHeader
	}
	if strings.Contains(text, "@") || phoneRe.MatchString(text) {
		return KindContactInfo
	}
	if metricsRe.MatchString(text) {
		return KindAchievement
	}
	return KindGenericText
}
