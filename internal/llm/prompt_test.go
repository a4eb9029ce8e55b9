package llm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LogeshBharathi/pdf-job-parser-backend/constants"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/llm"
)

func TestBuildPrompt_NamesEveryFieldAndSentinel(t *testing.T) {
	prompt := llm.BuildPrompt("some document text", 0)

	for _, field := range constants.SchemaFields {
		assert.Contains(t, prompt, "'"+field+"'")
	}
	assert.Contains(t, prompt, constants.Sentinel)
	assert.Contains(t, prompt, "valid JSON object")
	assert.Contains(t, prompt, "some document text")
}

func TestBuildPrompt_TruncatesSourceText(t *testing.T) {
	text := strings.Repeat("a", 50)

	prompt := llm.BuildPrompt(text, 10)

	start := strings.Index(prompt, "--- PDF TEXT START ---\n")
	end := strings.Index(prompt, "\n--- PDF TEXT END ---")
	require.GreaterOrEqual(t, start, 0)
	require.Greater(t, end, start)

	embedded := prompt[start+len("--- PDF TEXT START ---\n") : end]
	assert.Equal(t, strings.Repeat("a", 10), embedded)
}

func TestBuildPrompt_ShortTextPassesThrough(t *testing.T) {
	prompt := llm.BuildPrompt("tiny", llm.DefaultMaxPromptChars)
	assert.Contains(t, prompt, "--- PDF TEXT START ---\ntiny\n--- PDF TEXT END ---")
}
