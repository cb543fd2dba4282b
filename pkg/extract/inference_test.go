package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-parser/pkg/resume"
)

func TestMarkInferredSkills(t *testing.T) {
	text := "Senior Engineer with 8 years of Python and k8s experience, shipped node.js services"
	skills := []resume.Skill{
		{Name: "Python"},
		{Name: "Kubernetes", IsInferred: false},
		{Name: "Node.js"},
		{Name: "Mentoring", IsInferred: false},
		{Name: "Problem Solving", InferredFrom: "Senior title"},
	}

	markInferredSkills(skills, text)

	// explicit mentions, including alias spellings
	assert.False(t, skills[0].IsInferred)
	assert.False(t, skills[1].IsInferred, "k8s in text covers Kubernetes")
	assert.False(t, skills[2].IsInferred, "node.js normalizes to node js")

	// absent skills are inferred regardless of the model's flag
	assert.True(t, skills[3].IsInferred)
	assert.Equal(t, inferredFromContext, skills[3].InferredFrom)

	// a model-provided provenance survives
	assert.True(t, skills[4].IsInferred)
	assert.Equal(t, "Senior title", skills[4].InferredFrom)
}

func TestMarkInferredSkillsClearsProvenanceOnExplicit(t *testing.T) {
	skills := []resume.Skill{{Name: "Go", IsInferred: true, InferredFrom: "guessed"}}
	markInferredSkills(skills, "built services in Go and golang tooling")
	assert.False(t, skills[0].IsInferred)
	assert.Empty(t, skills[0].InferredFrom)
}
