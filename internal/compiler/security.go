// Package compiler drives compilation runs over RAG pattern corpora:
// deterministic file enumeration, per-document error isolation, and rule
// accumulation for the document writer.
package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/scanforge/scanforge/internal/ragparse"
	"github.com/scanforge/scanforge/internal/semgrep"
	"github.com/scanforge/scanforge/pkg/shared/files"
)

// CompileSecurityCorpus processes every top-level .md document of a security
// pattern directory, in lexicographic order, into a flat rule list. Files
// prefixed with an underscore are skipped; a failing document is logged and
// skipped. The base name of ragDir is the fallback category and the scanner
// name. A missing directory is the only fatal error.
func CompileSecurityCorpus(ragDir, idPrefix string, logger hclog.Logger) ([]semgrep.Rule, error) {
	if err := files.ValidateDirPath(ragDir); err != nil {
		return nil, fmt.Errorf("rag directory not found: %w", err)
	}
	baseCategory := filepath.Base(filepath.Clean(ragDir))

	entries, err := os.ReadDir(ragDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read rag directory %q: %w", ragDir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") || strings.HasPrefix(name, "_") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	logger.Info("found markdown documents", "directory", ragDir, "count", len(names))

	var records []ragparse.PatternRecord
	for _, name := range names {
		path := filepath.Join(ragDir, name)
		content, err := os.ReadFile(path)
		if err != nil {
			logger.Error("skipping unreadable document", "path", path, "error", err)
			continue
		}
		extracted := ragparse.ExtractPatternRecords(string(content))
		logger.Debug("extracted patterns", "path", path, "count", len(extracted))
		records = append(records, extracted...)
	}

	synth := semgrep.NewSynthesizer(idPrefix)
	return synth.SecurityRules(records, baseCategory), nil
}

// CountByCategory tallies rules by their metadata category, for the run
// summary.
func CountByCategory(rules []semgrep.Rule) map[string]int {
	counts := make(map[string]int)
	for _, rule := range rules {
		counts[rule.Metadata.Category]++
	}
	return counts
}
