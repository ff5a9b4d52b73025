package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTaskContainsTargetAndRules(t *testing.T) {
	task := BuildTask(PracticeTarget{
		Name: "Ark Medical Centre (New patient enquiry)",
		URL:  "https://arkmedical.ie/",
	})

	assert.Contains(t, task, "Practice: Ark Medical Centre (New patient enquiry)")
	assert.Contains(t, task, "URL: https://arkmedical.ie/")

	// Cookie banners must be rejected, not accepted.
	assert.Contains(t, task, "reject/decline all cookies")

	// The schema block pins the practice identity for the agent.
	assert.Contains(t, task, `"practice": "Ark Medical Centre (New patient enquiry)"`)
	assert.Contains(t, task, `"status": "Accepting" | "Not Accepting" | "Unclear"`)
	assert.Contains(t, task, `"contact_email": null`)
}

func TestBuildTaskEscapesQuotesInName(t *testing.T) {
	task := BuildTask(PracticeTarget{
		Name: `The "Village" Surgery`,
		URL:  "https://example.ie/",
	})

	assert.Contains(t, task, `"practice": "The \"Village\" Surgery"`)
}

func TestOutputSchemaEnumeratesStatuses(t *testing.T) {
	assert.Contains(t, OutputSchema, `"Accepting"`)
	assert.Contains(t, OutputSchema, `"Not Accepting"`)
	assert.Contains(t, OutputSchema, `"Unclear"`)
	assert.Contains(t, OutputSchema, `"required"`)
}
