package extract

import (
	"encoding/json"

	"resume-parser/pkg/llm"
)

// functionSchema describes the tool the model must call. The parameter
// shape mirrors pkg/resume.Schema minus parserMetadata, which is filled
// in locally after extraction.
func functionSchema() llm.FunctionSchema {
	return llm.FunctionSchema{
		Name:        "extract_resume_data",
		Description: "Extract structured resume data matching the canonical JSON schema",
		Parameters:  json.RawMessage(functionParameters),
	}
}

const functionParameters = `{
  "type": "object",
  "properties": {
    "contactInfo": {
      "type": "object",
      "properties": {
        "fullName": {"type": "string"},
        "firstName": {"type": "string"},
        "lastName": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "location": {
          "type": "object",
          "properties": {
            "city": {"type": "string"},
            "state": {"type": "string"},
            "country": {"type": "string"}
          }
        }
      },
      "required": ["fullName"]
    },
    "summary": {"type": "string"},
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "category": {"type": "string"},
          "experienceInMonths": {"type": "integer"},
          "lastUsed": {"type": "string"},
          "isInferred": {"type": "boolean", "description": "True if the skill was deduced from context, false if explicitly mentioned"},
          "inferredFrom": {"type": "string", "description": "What this skill was inferred from"}
        },
        "required": ["name"]
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "schoolName": {"type": "string"},
          "degreeName": {"type": "string"},
          "degreeType": {"type": "string"},
          "location": {
            "type": "object",
            "properties": {
              "city": {"type": "string"},
              "state": {"type": "string"},
              "country": {"type": "string"}
            }
          },
          "graduationDate": {"type": "string"}
        },
        "required": ["schoolName", "degreeName", "degreeType"]
      }
    },
    "workExperience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "jobTitle": {"type": "string"},
          "employer": {"type": "string"},
          "location": {
            "type": "object",
            "properties": {
              "city": {"type": "string"},
              "state": {"type": "string"},
              "country": {"type": "string"}
            }
          },
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "description": {"type": "string"}
        },
        "required": ["jobTitle", "employer", "startDate", "endDate", "description"]
      }
    },
    "certifications": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "issuer": {"type": "string"},
          "issueDate": {"type": "string"}
        },
        "required": ["name"]
      }
    },
    "experienceSummary": {
      "type": "object",
      "properties": {
        "totalMonthsExperience": {"type": "integer"},
        "monthsOfManagementExperience": {"type": "integer"},
        "currentManagementLevel": {"type": "string"},
        "description": {"type": "string"}
      },
      "required": ["totalMonthsExperience", "monthsOfManagementExperience", "currentManagementLevel", "description"]
    }
  },
  "required": ["contactInfo", "summary", "skills", "education", "workExperience", "certifications", "experienceSummary"]
}`
