package ragparse

import (
	"regexp"
	"strings"
)

// PatternRecord is one detection pattern extracted from a security pattern
// document, with the metadata that was current when its block closed.
type PatternRecord struct {
	Category    string
	Severity    string
	Confidence  int
	CWE         []string
	OWASP       []string
	Description string
	Regex       string
	Languages   []string
}

var (
	patternLineRe   = regexp.MustCompile(`PATTERN:\s*(.+)`)
	languagesLineRe = regexp.MustCompile(`LANGUAGES:\s*(.+)`)
)

// ExtractPatternRecords scans a document for fenced code blocks carrying a
// PATTERN: declaration and returns one record per qualifying block. Metadata
// markers outside blocks update the running state; a block without PATTERN:
// yields nothing.
func ExtractPatternRecords(content string) []PatternRecord {
	var records []PatternRecord
	meta := DefaultMetadata()

	lines := strings.Split(content, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if strings.HasPrefix(line, "```") {
			var block []string
			i++
			for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
				block = append(block, lines[i])
				i++
			}
			if rec, ok := recordFromBlock(strings.Join(block, "\n"), meta); ok {
				records = append(records, rec)
			}
			continue
		}

		meta = meta.Apply(line)
	}

	return records
}

// recordFromBlock builds a record from a fenced block body and the metadata
// snapshot at the point the block closes.
func recordFromBlock(block string, meta Metadata) (PatternRecord, bool) {
	patternMatch := patternLineRe.FindStringSubmatch(block)
	if patternMatch == nil {
		return PatternRecord{}, false
	}

	languages := []string{"generic"}
	if langMatch := languagesLineRe.FindStringSubmatch(block); langMatch != nil {
		languages = nil
		for _, lang := range strings.Split(langMatch[1], ",") {
			languages = append(languages, strings.TrimSpace(lang))
		}
	}

	return PatternRecord{
		Category:    meta.Category,
		Severity:    meta.Severity,
		Confidence:  meta.Confidence,
		CWE:         append([]string(nil), meta.CWE...),
		OWASP:       append([]string(nil), meta.OWASP...),
		Description: meta.Description,
		Regex:       strings.TrimSpace(patternMatch[1]),
		Languages:   languages,
	}, true
}
