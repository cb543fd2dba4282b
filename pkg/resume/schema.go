// Package resume defines the canonical JSON schema for parsed resumes and
// the date normalization rules that keep LLM output consistent.
package resume

// Location is a geographic location attached to contact, education or
// work entries.
type Location struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// ContactInfo identifies the resume owner.
type ContactInfo struct {
	FullName  string    `json:"fullName"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Location  *Location `json:"location,omitempty"`
}

// Skill is a single skill with optional provenance metadata. IsInferred
// marks skills deduced from context rather than written in the resume.
type Skill struct {
	Name               string `json:"name"`
	Category           string `json:"category,omitempty"`
	ExperienceInMonths int    `json:"experienceInMonths,omitempty"`
	LastUsed           string `json:"lastUsed,omitempty"` // YYYY-MM-DD or "current"
	IsInferred         bool   `json:"isInferred"`
	InferredFrom       string `json:"inferredFrom,omitempty"`
}

type Education struct {
	SchoolName     string    `json:"schoolName"`
	DegreeName     string    `json:"degreeName"`
	DegreeType     string    `json:"degreeType"`
	Location       *Location `json:"location,omitempty"`
	GraduationDate string    `json:"graduationDate,omitempty"` // YYYY-MM
}

type WorkExperience struct {
	JobTitle    string    `json:"jobTitle"`
	Employer    string    `json:"employer"`
	Location    *Location `json:"location,omitempty"`
	StartDate   string    `json:"startDate"` // YYYY-MM
	EndDate     string    `json:"endDate"`   // YYYY-MM or "current"
	Description string    `json:"description"`
}

type Certification struct {
	Name      string `json:"name"`
	Issuer    string `json:"issuer,omitempty"`
	IssueDate string `json:"issueDate,omitempty"` // YYYY-MM
}

// ExperienceSummary aggregates work history into totals.
type ExperienceSummary struct {
	TotalMonthsExperience        int    `json:"totalMonthsExperience"`
	MonthsOfManagementExperience int    `json:"monthsOfManagementExperience"`
	CurrentManagementLevel       string `json:"currentManagementLevel"`
	Description                  string `json:"description"`
}

type Culture struct {
	Language    string `json:"language"`
	Country     string `json:"country"`
	CultureInfo string `json:"cultureInfo"`
}

// ParserMetadata describes how the resume was processed.
type ParserMetadata struct {
	FileType       string   `json:"fileType"`
	FileExtension  string   `json:"fileExtension"`
	RevisionDate   string   `json:"revisionDate"`
	ParserWarnings []string `json:"parserWarnings"`
	Culture        *Culture `json:"culture,omitempty"`
}

// Schema is the complete structured resume.
type Schema struct {
	ContactInfo       ContactInfo       `json:"contactInfo"`
	Summary           string            `json:"summary"`
	Skills            []Skill           `json:"skills"`
	Education         []Education       `json:"education"`
	WorkExperience    []WorkExperience  `json:"workExperience"`
	Certifications    []Certification   `json:"certifications"`
	ExperienceSummary ExperienceSummary `json:"experienceSummary"`
	ParserMetadata    ParserMetadata    `json:"parserMetadata"`
}

// EnsureSlices replaces nil slices with empty ones so the JSON output
// always carries arrays, never null.
func (s *Schema) EnsureSlices() {
	if s.Skills == nil {
		s.Skills = []Skill{}
	}
	if s.Education == nil {
		s.Education = []Education{}
	}
	if s.WorkExperience == nil {
		s.WorkExperience = []WorkExperience{}
	}
	if s.Certifications == nil {
		s.Certifications = []Certification{}
	}
	if s.ParserMetadata.ParserWarnings == nil {
		s.ParserMetadata.ParserWarnings = []string{}
	}
}
