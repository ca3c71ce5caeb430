package ragparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSection(t *testing.T) {
	content := "# OpenAI\n" +
		"\n" +
		"## Package Detection\n" +
		"### NPM\n" +
		"- `openai`\n" +
		"### PYPI\n" +
		"- `openai`\n" +
		"\n" +
		"## Environment Variables\n" +
		"- `OPENAI_API_KEY`\n"

	testCases := []struct {
		name     string
		heading  string
		expected string
	}{
		{
			name:     "section ends at next equal-rank heading",
			heading:  "## Package Detection",
			expected: "### NPM\n- `openai`\n### PYPI\n- `openai`\n",
		},
		{
			name:     "last section runs to end of document",
			heading:  "## Environment Variables",
			expected: "- `OPENAI_API_KEY`\n",
		},
		{
			name:     "missing heading yields empty section",
			heading:  "## Secrets Detection",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Section(content, tc.heading))
		})
	}
}

func TestSubSectionScopedToEnclosingSection(t *testing.T) {
	content := "## Package Detection\n" +
		"### Go\n" +
		"- `github.com/sashabaranov/go-openai`\n" +
		"## Import Detection\n" +
		"### Go\n" +
		"**Pattern**: `import.*\"github.com/sashabaranov/go-openai\"`\n"

	imports := Section(content, "## Import Detection")
	sub := Section(imports, "### Go")

	assert.Contains(t, sub, "**Pattern**")
	assert.NotContains(t, sub, "- `github.com")
}

func TestHeadingLevel(t *testing.T) {
	assert.Equal(t, 1, headingLevel("# Name"))
	assert.Equal(t, 3, headingLevel("### NPM"))
	assert.Equal(t, 4, headingLevel("#### AWS Key"))
	assert.Equal(t, 0, headingLevel("not a heading"))
	assert.Equal(t, 0, headingLevel("####"))
	assert.Equal(t, 0, headingLevel("#hashtag"))
}
