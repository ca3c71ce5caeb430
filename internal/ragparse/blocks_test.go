package ragparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPatternRecords(t *testing.T) {
	content := "CATEGORY: ai-library\n" +
		"SEVERITY: info\n" +
		"### OpenAI import\n" +
		"```\n" +
		"PATTERN: ^import openai\n" +
		"LANGUAGES: python\n" +
		"```\n"

	records := ExtractPatternRecords(content)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "ai-library", rec.Category)
	assert.Equal(t, "info", rec.Severity)
	assert.Equal(t, 80, rec.Confidence)
	assert.Equal(t, "OpenAI import", rec.Description)
	assert.Equal(t, "^import openai", rec.Regex)
	assert.Equal(t, []string{"python"}, rec.Languages)
}

func TestExtractPatternRecordsDefaultsToGeneric(t *testing.T) {
	content := "```\nPATTERN: AKIA[0-9A-Z]{16}\n```\n"

	records := ExtractPatternRecords(content)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"generic"}, records[0].Languages)
}

func TestExtractPatternRecordsSkipsBlocksWithoutPattern(t *testing.T) {
	content := "```\njust an example snippet\n```\n" +
		"```python\nimport os\n```\n"

	assert.Empty(t, ExtractPatternRecords(content))
}

func TestExtractPatternRecordsInheritsMetadata(t *testing.T) {
	content := "CATEGORY: api-auth\n" +
		"SEVERITY: critical\n" +
		"CWE: CWE-306\n" +
		"### First check\n" +
		"```\nPATTERN: first\n```\n" +
		"SEVERITY: low\n" +
		"```\nPATTERN: second\n```\n"

	records := ExtractPatternRecords(content)
	require.Len(t, records, 2)

	// The second block inherits everything it does not redefine.
	assert.Equal(t, "critical", records[0].Severity)
	assert.Equal(t, "low", records[1].Severity)
	assert.Equal(t, "api-auth", records[1].Category)
	assert.Equal(t, []string{"CWE-306"}, records[1].CWE)
	assert.Equal(t, "First check", records[1].Description)
}

func TestExtractPatternRecordsLanguageListIsTrimmed(t *testing.T) {
	content := "```\nPATTERN: eval\\(\nLANGUAGES: javascript , typescript\n```\n"

	records := ExtractPatternRecords(content)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"javascript", "typescript"}, records[0].Languages)
}
