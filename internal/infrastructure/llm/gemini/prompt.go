package gemini

import (
	"fmt"
	"strings"
)

// maxPromptChars bounds how much extracted text travels to the analyzer.
// Documents are truncated to a prefix; the local pipeline always sees the
// full text.
const maxPromptChars = 8000

const analyzerInstruction = `You analyze a single document and respond with exactly one JSON object, no prose and no markdown fences.

The object has this shape:
{
  "category": one of "Medical", "Dental", "Pharmacy", "Insurance", "Finance", "ID", "Legal", "Other",
  "todos": [
    {
      "type": "appointment" or "todo",
      "title": short imperative title,
      "description": the sentence or clause the item came from,
      "due_date_iso": "YYYY-MM-DD" or null when no date is stated,
      "category": same closed set as above
    }
  ],
  "entities": { notable names, amounts, identifiers }
}

Only report appointments and tasks that the document actually states. Never invent dates.`

func buildUserPayload(text, filename string) string {
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars]
	}
	var sb strings.Builder
	if filename != "" {
		fmt.Fprintf(&sb, "Filename: %s\n\n", filename)
	}
	sb.WriteString("Document text:\n")
	sb.WriteString(text)
	return sb.String()
}
