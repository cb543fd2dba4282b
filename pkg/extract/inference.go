package extract

import (
	"resume-parser/pkg/nlp"
	"resume-parser/pkg/resume"
)

const inferredFromContext = "Professional experience context"

// markInferredSkills overrides the model's isInferred flags with a text
// check: a skill that never appears in the resume, under any of its
// common alias spellings, is inferred no matter what the model said.
func markInferredSkills(skills []resume.Skill, resumeText string) {
	normalized := nlp.Normalize(resumeText)
	for i := range skills {
		if skillMentioned(skills[i].Name, normalized) {
			skills[i].IsInferred = false
			skills[i].InferredFrom = ""
			continue
		}
		skills[i].IsInferred = true
		if skills[i].InferredFrom == "" {
			skills[i].InferredFrom = inferredFromContext
		}
	}
}

func skillMentioned(skill, normalizedText string) bool {
	for _, variant := range nlp.SkillVariants(skill) {
		if nlp.ContainsPhrase(normalizedText, variant) {
			return true
		}
	}
	return false
}
