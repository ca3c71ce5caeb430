package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, root, relDir, content string) {
	t.Helper()
	dir := filepath.Join(root, relDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "patterns.md"), []byte(content), 0644))
}

const stripeDescriptor = "# Stripe\n" +
	"**Category**: payments\n" +
	"## Import Detection\n" +
	"### Python\n" +
	"**Pattern**: `^import stripe`\n" +
	"## Secrets Detection\n" +
	"#### Stripe Secret Key\n" +
	"**Pattern**: `sk_live_[0-9a-zA-Z]{24}`\n" +
	"**Severity**: critical\n"

func TestCompileTechnologyCorpus(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "payments/stripe", stripeDescriptor)

	buckets, err := CompileTechnologyCorpus(root, "scanforge", hclog.NewNullLogger())
	require.NoError(t, err)

	discovery := buckets[BucketTechDiscovery]
	require.Len(t, discovery, 1)
	assert.Equal(t, "scanforge.payments.stripe.stripe.import.python", discovery[0].ID)
	assert.Equal(t, "import stripe", discovery[0].Pattern)

	secrets := buckets[BucketSecrets]
	require.Len(t, secrets, 1)
	assert.Equal(t, "scanforge.payments.stripe.stripe.secret.stripe-secret-key", secrets[0].ID)
	assert.Equal(t, "ERROR", secrets[0].Severity)
	assert.Equal(t, []string{"generic"}, secrets[0].Languages)
	assert.Equal(t, "sk_live_[0-9a-zA-Z]{24}", secrets[0].PatternRegex)

	assert.Len(t, buckets[BucketTechDebt], 5)
}

func TestCompileTechnologyCorpusMissingDirIsFatal(t *testing.T) {
	_, err := CompileTechnologyCorpus(filepath.Join(t.TempDir(), "nope"), "scanforge", hclog.NewNullLogger())
	assert.Error(t, err)
}

func TestCompileTechnologyCorpusSkipsNamelessDescriptors(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "broken", "## Import Detection\n### Python\n**Pattern**: `^import x`\n")
	writeDescriptor(t, root, "ok", "# Flask\n**Category**: web\n## Import Detection\n### Python\n**Pattern**: `^import flask`\n")

	buckets, err := CompileTechnologyCorpus(root, "scanforge", hclog.NewNullLogger())
	require.NoError(t, err)

	discovery := buckets[BucketTechDiscovery]
	require.Len(t, discovery, 1)
	assert.Equal(t, "scanforge.ok.flask.import.python", discovery[0].ID)
}

func TestCompileTechnologyCorpusMalformedSecretsDoNotAbort(t *testing.T) {
	root := t.TempDir()
	// Truncated secrets section: the sub-block has no severity line.
	writeDescriptor(t, root, "aws", "# AWS\n"+
		"**Category**: cloud\n"+
		"## Import Detection\n"+
		"### Python\n"+
		"**Pattern**: `^import boto3`\n"+
		"## Secrets Detection\n"+
		"#### AWS Key\n"+
		"**Pattern**: `AKIA[0-9A-Z]{16}`\n")
	writeDescriptor(t, root, "stripe", stripeDescriptor)

	buckets, err := CompileTechnologyCorpus(root, "scanforge", hclog.NewNullLogger())
	require.NoError(t, err)

	// The malformed secret is dropped, the same document's import rule and
	// the other document's rules survive.
	ids := []string{}
	for _, rule := range buckets[BucketTechDiscovery] {
		ids = append(ids, rule.ID)
	}
	assert.Contains(t, ids, "scanforge.aws.aws.import.python")
	assert.Contains(t, ids, "scanforge.stripe.stripe.import.python")
	require.Len(t, buckets[BucketSecrets], 1)
	assert.Equal(t, "scanforge.stripe.stripe.secret.stripe-secret-key", buckets[BucketSecrets][0].ID)
}
