package intake

import (
	"encoding/json"
	"fmt"
	"strings"
)

const taskInstructions = `You are an automated browser agent. Determine whether the GP practice is currently accepting new patients.

Steps:
1. Open the given homepage URL.
2. If a cookie pop-up appears, reject/decline all cookies (do not accept).
3. Navigate through the site to find content about 'new patients', 'accepting', 'not accepting', 'registration', or similar.
4. Scroll as needed to locate the relevant statement.
5. Extract the exact text that indicates the status.
6. Decide one of three statuses: Accepting, Not Accepting, or Unclear.
7. If status is Accepting, find a contact email address for the practice; otherwise leave it null.

Output requirements:
- Return ONLY valid JSON (no markdown, no code fences, no extra text).
- The JSON MUST be a single-element array with exactly one object for this practice.
- evidence MUST be an exact snippet copied from the page that supports the status.
- If you cannot find an explicit statement, set status to Unclear and set evidence to the closest relevant text you found (or empty string if none).
- contact_email MUST be a single email address string when status is Accepting; otherwise null.`

// BuildTask renders the full natural-language task for one practice,
// including the schema of the single object the agent must return.
func BuildTask(target PracticeTarget) string {
	name, _ := json.Marshal(target.Name)
	url, _ := json.Marshal(target.URL)

	var sb strings.Builder
	sb.WriteString(taskInstructions)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Practice: %s\nURL: %s\n\n", target.Name, target.URL)
	sb.WriteString("Schema for the single object:\n")
	fmt.Fprintf(&sb, `{
  "practice": %s,
  "url": %s,
  "status": "Accepting" | "Not Accepting" | "Unclear",
  "evidence": "...",
  "contact_email": null,
  "checked_at": null
}`, name, url)

	return sb.String()
}

// OutputSchema is the JSON Schema handed to the agent service as the
// structured-output contract: an array of intake result objects.
const OutputSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "practice": {"type": "string"},
      "url": {"type": "string"},
      "status": {"type": "string", "enum": ["Accepting", "Not Accepting", "Unclear"]},
      "evidence": {"type": "string"},
      "contact_email": {"type": ["string", "null"]},
      "checked_at": {"type": ["string", "null"]}
    },
    "required": ["practice", "url", "status", "evidence"]
  }
}`
