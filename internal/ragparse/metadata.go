// Package ragparse extracts structured pattern data from RAG markdown
// documents: flat metadata lines, fenced PATTERN blocks, heading-delimited
// sections, and technology descriptors.
package ragparse

import (
	"strconv"
	"strings"
)

// Metadata is the running metadata state while scanning a pattern document.
// Values carry forward line by line until overwritten; Apply returns an
// updated copy so snapshots taken at block boundaries are never aliased.
type Metadata struct {
	Category    string
	Severity    string
	Confidence  int
	CWE         []string
	OWASP       []string
	Description string
}

// DefaultMetadata returns the initial state of a document scan.
func DefaultMetadata() Metadata {
	return Metadata{
		Severity:   "medium",
		Confidence: 80,
	}
}

// Apply interprets a single trimmed document line and returns the updated
// metadata snapshot. Lines that are not metadata markers leave the state
// unchanged. Malformed values fall back to the prior value, never an error.
func (m Metadata) Apply(line string) Metadata {
	switch {
	case strings.HasPrefix(line, "CATEGORY:"):
		m.Category = strings.TrimSpace(line[len("CATEGORY:"):])
	case strings.HasPrefix(line, "SEVERITY:"):
		m.Severity = strings.ToLower(strings.TrimSpace(line[len("SEVERITY:"):]))
	case strings.HasPrefix(line, "CONFIDENCE:"):
		if v, err := strconv.Atoi(strings.TrimSpace(line[len("CONFIDENCE:"):])); err == nil {
			m.Confidence = v
		}
	case strings.HasPrefix(line, "CWE:"):
		m.CWE = applyList(m.CWE, line[len("CWE:"):])
	case strings.HasPrefix(line, "OWASP:"):
		m.OWASP = applyList(m.OWASP, line[len("OWASP:"):])
	case strings.HasPrefix(line, "### "):
		m.Description = strings.TrimSpace(line[len("### "):])
	}
	return m
}

// applyList parses a comma-separated marker value. An empty value keeps the
// prior list; the literal "none" (any case) clears it.
func applyList(prior []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return prior
	}
	if strings.EqualFold(value, "none") {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
