package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	_, err := NewOpenAIClient("", "", "")
	require.Error(t, err)

	c, err := NewOpenAIClient("test-key", "", "")
	require.NoError(t, err)
	assert.Equal(t, defaultModel, c.model)

	c, err = NewOpenAIClient("test-key", "https://gateway.example/v1", "gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", c.model)
}

func TestExtractResultsArray(t *testing.T) {
	out, err := extractResultsArray(`{"results": [{"status": "Unclear"}]}`)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"status": "Unclear"}]`, out)
}

func TestExtractResultsArrayEmptyEnvelope(t *testing.T) {
	out, err := extractResultsArray(`{}`)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	out, err = extractResultsArray(`{"results": null}`)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestExtractResultsArrayRejectsGarbage(t *testing.T) {
	_, err := extractResultsArray("I could not find the page.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json parse error")
}
