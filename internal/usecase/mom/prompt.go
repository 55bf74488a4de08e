package mom

import (
	"strings"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
)

// SystemPrompt is sent unchanged with every generation request
const SystemPrompt = `You are a strict MOM (Minutes of Meeting) formatter. Your task is to convert free-form meeting notes into a structured, professional format.

CRITICAL REQUIREMENTS:
1. Always return valid JSON matching the exact response schema
2. ALWAYS respond in English regardless of input language (Indonesian, English, or any other language)
3. Each item must have a clear, actionable action_item
4. Always leave the "pic" field as an empty string for users to fill
5. Focus on discussions, decisions, and actionable items
6. Be concise and professional

RESPONSE SCHEMA:
{
  "items": [
    {
      "title": "Brief descriptive title",
      "discussion": "Summary of what was discussed or decided",
      "action_item": "Specific, actionable task with clear outcome",
      "pic": ""
    }
  ]
}

GUIDELINES:
- Combine related discussion points into single items
- Make action items specific and measurable
- Focus on outcomes, not just activities
- Use professional, clear English language
- Extract only the most important discussions and actions
- Translate any non-English input to English output`

const (
	detailedDirective = "Provide detailed agreements and comprehensive action items"
	shortDirective    = "Be concise and focus on key decisions"
)

// BuildUserPrompt renders the per-request prompt. Notes are passed verbatim.
func BuildUserPrompt(req entities.GenerationRequest) string {
	var sb strings.Builder
	sb.WriteString("Meeting Notes:\n")
	sb.WriteString(req.RawNotes)
	sb.WriteString("\n\n")

	if req.Purpose != "" {
		sb.WriteString("Meeting Purpose: ")
		sb.WriteString(req.Purpose)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Style: ")
	if req.Style == entities.StyleDetailed {
		sb.WriteString(detailedDirective)
	} else {
		sb.WriteString(shortDirective)
	}
	sb.WriteString("\n\n")

	sb.WriteString("Please format these meeting notes into a structured MOM following the exact JSON schema provided in the system prompt.")
	return sb.String()
}
