package compiler

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/scanforge/scanforge/internal/ragparse"
	"github.com/scanforge/scanforge/internal/semgrep"
	"github.com/scanforge/scanforge/pkg/shared/files"
)

// Rule bucket names, one output document each.
const (
	BucketTechDiscovery = "tech-discovery"
	BucketSecrets       = "secrets"
	BucketTechDebt      = "tech-debt"
)

// Buckets lists the bucket names in output order.
var Buckets = []string{BucketTechDiscovery, BucketSecrets, BucketTechDebt}

// CompileTechnologyCorpus walks ragDir for patterns.md technology
// descriptors, in lexicographic path order, and synthesizes rules into named
// buckets. Secret rules land in the secrets bucket, import rules in
// tech-discovery; the built-in tech debt ruleset fills tech-debt. Per-file
// failures are logged and skipped; a missing directory is fatal.
func CompileTechnologyCorpus(ragDir, idPrefix string, logger hclog.Logger) (map[string][]semgrep.Rule, error) {
	if err := files.ValidateDirPath(ragDir); err != nil {
		return nil, fmt.Errorf("rag directory not found: %w", err)
	}

	var paths []string
	err := filepath.WalkDir(ragDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() && d.Name() == "patterns.md" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk rag directory %q: %w", ragDir, err)
	}
	sort.Strings(paths)
	logger.Info("found pattern files", "directory", ragDir, "count", len(paths))

	buckets := map[string][]semgrep.Rule{
		BucketTechDiscovery: {},
		BucketSecrets:       {},
		BucketTechDebt:      {},
	}

	synth := semgrep.NewSynthesizer(idPrefix)
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			logger.Error("skipping unreadable document", "path", path, "error", err)
			continue
		}

		desc := ragparse.ParseDescriptor(string(content))
		if desc.Name == "" {
			logger.Warn("descriptor without a name, skipping", "path", path)
			continue
		}

		rules := synth.TechnologyRules(desc, descriptorBaseID(ragDir, path, idPrefix))
		for _, rule := range rules {
			if strings.Contains(rule.ID, ".secret.") {
				buckets[BucketSecrets] = append(buckets[BucketSecrets], rule)
			} else {
				buckets[BucketTechDiscovery] = append(buckets[BucketTechDiscovery], rule)
			}
		}
		if len(rules) > 0 {
			logger.Debug("converted descriptor", "path", path, "technology", desc.Name, "rules", len(rules))
		}
	}

	buckets[BucketTechDebt] = synth.TechDebtRules()
	return buckets, nil
}

// descriptorBaseID derives the id prefix for one descriptor from its
// corpus-relative directory path, slashes replaced with dots.
func descriptorBaseID(ragDir, path, idPrefix string) string {
	rel, err := filepath.Rel(ragDir, path)
	if err != nil {
		return idPrefix
	}
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." {
		return idPrefix
	}
	return idPrefix + "." + strings.ReplaceAll(dir, "/", ".")
}
