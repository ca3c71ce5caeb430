package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpusFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestCompileSecurityCorpus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "api-security")
	require.NoError(t, os.Mkdir(dir, 0755))

	writeCorpusFile(t, dir, "auth.md",
		"CATEGORY: api-auth\n"+
			"SEVERITY: info\n"+
			"### OpenAI import\n"+
			"```\nPATTERN: ^import openai\nLANGUAGES: python\n```\n")
	writeCorpusFile(t, dir, "_template.md",
		"```\nPATTERN: should-not-appear\n```\n")
	writeCorpusFile(t, dir, "notes.txt", "not a markdown corpus file")

	rules, err := CompileSecurityCorpus(dir, "scanforge", hclog.NewNullLogger())
	require.NoError(t, err)
	require.Len(t, rules, 1)

	rule := rules[0]
	assert.Equal(t, "scanforge.api-auth.openai-import", rule.ID)
	assert.Equal(t, "INFO", rule.Severity)
	assert.Equal(t, []string{"python"}, rule.Languages)
	assert.Equal(t, "api-auth", rule.Metadata.Category)
	assert.Equal(t, "api-security", rule.Metadata.Scanner)
	assert.Equal(t, "import openai", rule.Pattern)
	assert.Empty(t, rule.PatternRegex)
}

func TestCompileSecurityCorpusMissingDirIsFatal(t *testing.T) {
	_, err := CompileSecurityCorpus(filepath.Join(t.TempDir(), "nope"), "scanforge", hclog.NewNullLogger())
	assert.Error(t, err)
}

func TestCompileSecurityCorpusIsDeterministic(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "crypto")
	require.NoError(t, os.Mkdir(dir, 0755))

	// Same description in two documents forces a collision; the suffix must
	// land on the lexicographically later document on every run.
	writeCorpusFile(t, dir, "b.md",
		"CATEGORY: crypto\n### Weak hash\n```\nPATTERN: sha1\n```\n")
	writeCorpusFile(t, dir, "a.md",
		"CATEGORY: crypto\n### Weak hash\n```\nPATTERN: md5\n```\n")

	first, err := CompileSecurityCorpus(dir, "scanforge", hclog.NewNullLogger())
	require.NoError(t, err)
	second, err := CompileSecurityCorpus(dir, "scanforge", hclog.NewNullLogger())
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.Len(t, first, 2)
	assert.Equal(t, "scanforge.crypto.weak-hash", first[0].ID)
	assert.Equal(t, "md5", first[0].PatternRegex)
	assert.Equal(t, "scanforge.crypto.weak-hash-1", first[1].ID)
	assert.Equal(t, "sha1", first[1].PatternRegex)
}

func TestCountByCategory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "api-security")
	require.NoError(t, os.Mkdir(dir, 0755))
	writeCorpusFile(t, dir, "auth.md",
		"CATEGORY: api-auth\n### A\n```\nPATTERN: a\n```\n"+
			"CATEGORY: api-input\n### B\n```\nPATTERN: b\n```\n")

	rules, err := CompileSecurityCorpus(dir, "scanforge", hclog.NewNullLogger())
	require.NoError(t, err)

	counts := CountByCategory(rules)
	assert.Equal(t, map[string]int{"api-auth": 1, "api-input": 1}, counts)
}
