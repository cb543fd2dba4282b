package resume

import (
	"fmt"
	"strings"
	"time"
)

var currentVariants = map[string]bool{
	"current": true,
	"present": true,
	"now":     true,
	"ongoing": true,
}

// NormalizeMonth accepts YYYY-MM as-is and collapses YYYY-MM-DD to YYYY-MM.
// Empty input stays empty.
func NormalizeMonth(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01", v); err == nil {
		return v, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t.Format("2006-01"), nil
	}
	return "", fmt.Errorf("date %q must be in YYYY-MM or YYYY-MM-DD format", v)
}

// NormalizeEndDate handles the common spellings of ongoing employment
// before falling back to month normalization. Required: empty is an error.
func NormalizeEndDate(v string) (string, error) {
	if currentVariants[strings.ToLower(strings.TrimSpace(v))] {
		return "current", nil
	}
	out, err := NormalizeMonth(v)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("endDate is required (YYYY-MM or \"current\")")
	}
	return out, nil
}

// NormalizeStartDate is month normalization with a required value.
func NormalizeStartDate(v string) (string, error) {
	out, err := NormalizeMonth(v)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("startDate is required (YYYY-MM)")
	}
	return out, nil
}

// NormalizeLastUsed accepts YYYY-MM-DD or "current"; empty stays empty.
func NormalizeLastUsed(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	if strings.EqualFold(v, "current") {
		return "current", nil
	}
	if _, err := time.Parse("2006-01-02", v); err == nil {
		return v, nil
	}
	return "", fmt.Errorf("lastUsed %q must be in YYYY-MM-DD format or \"current\"", v)
}

// Normalize applies the date rules across the whole schema. Invalid
// optional dates are cleared; invalid required dates are kept verbatim so
// the caller still sees what the model produced. Every problem comes back
// as a warning.
func (s *Schema) Normalize() []string {
	var warnings []string

	for i := range s.Skills {
		lastUsed, err := NormalizeLastUsed(s.Skills[i].LastUsed)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skill %q: %v", s.Skills[i].Name, err))
			s.Skills[i].LastUsed = ""
			continue
		}
		s.Skills[i].LastUsed = lastUsed
	}

	for i := range s.Education {
		grad, err := NormalizeMonth(s.Education[i].GraduationDate)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("education %q: %v", s.Education[i].SchoolName, err))
			s.Education[i].GraduationDate = ""
			continue
		}
		s.Education[i].GraduationDate = grad
	}

	for i := range s.WorkExperience {
		w := &s.WorkExperience[i]
		if start, err := NormalizeStartDate(w.StartDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("work experience %q: %v", w.Employer, err))
		} else {
			w.StartDate = start
		}
		if end, err := NormalizeEndDate(w.EndDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("work experience %q: %v", w.Employer, err))
		} else {
			w.EndDate = end
		}
	}

	for i := range s.Certifications {
		issue, err := NormalizeMonth(s.Certifications[i].IssueDate)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("certification %q: %v", s.Certifications[i].Name, err))
			s.Certifications[i].IssueDate = ""
			continue
		}
		s.Certifications[i].IssueDate = issue
	}

	s.EnsureSlices()
	return warnings
}
