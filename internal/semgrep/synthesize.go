package semgrep

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/scanforge/scanforge/internal/ragparse"
)

// severityTable maps RAG severities to Semgrep severities. Unrecognized
// values map to WARNING.
var severityTable = map[string]string{
	"critical": SeverityError,
	"high":     SeverityError,
	"medium":   SeverityWarning,
	"low":      SeverityInfo,
	"info":     SeverityInfo,
}

// MapSeverity converts a RAG severity, in any case variant, to a Semgrep
// severity.
func MapSeverity(severity string) string {
	if s, ok := severityTable[strings.ToLower(severity)]; ok {
		return s
	}
	return SeverityWarning
}

// languageTable maps free-text language names to canonical Semgrep language
// tags. Unrecognized names map to generic.
var languageTable = map[string]string{
	"javascript": "javascript",
	"typescript": "typescript",
	"python":     "python",
	"java":       "java",
	"go":         "go",
	"ruby":       "ruby",
	"generic":    "generic",
	"yaml":       "yaml",
	"json":       "json",
	"graphql":    "generic",
}

// NormalizeLanguages maps language names to canonical tags, deduplicating
// while preserving first-seen order. A set containing javascript always gains
// typescript; an empty input normalizes to generic.
func NormalizeLanguages(languages []string) []string {
	var normalized []string
	for _, lang := range languages {
		mapped, ok := languageTable[strings.ToLower(strings.TrimSpace(lang))]
		if !ok {
			mapped = "generic"
		}
		if !contains(normalized, mapped) {
			normalized = append(normalized, mapped)
		}
	}
	if contains(normalized, "javascript") && !contains(normalized, "typescript") {
		normalized = append(normalized, "typescript")
	}
	if len(normalized) == 0 {
		normalized = []string{"generic"}
	}
	return normalized
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts free text to a rule id segment: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, truncated to 50
// characters, edge hyphens trimmed.
func Slug(s string) string {
	slug := nonAlnumRe.ReplaceAllString(strings.ToLower(s), "-")
	if len(slug) > 50 {
		slug = slug[:50]
	}
	return strings.Trim(slug, "-")
}

// Synthesizer assembles extracted pattern data into Semgrep rules. It owns
// the run-scoped set of assigned rule ids, so every id it hands out is unique
// for the lifetime of one compilation run.
type Synthesizer struct {
	prefix string
	seen   map[string]struct{}
}

// NewSynthesizer returns a synthesizer generating ids under the given scanner
// prefix.
func NewSynthesizer(prefix string) *Synthesizer {
	return &Synthesizer{
		prefix: prefix,
		seen:   make(map[string]struct{}),
	}
}

// uniqueID registers and returns base if unused, otherwise the first free
// base-N variant. The first occurrence always keeps the unqualified form.
func (s *Synthesizer) uniqueID(base string) string {
	id := base
	for n := 1; ; n++ {
		if _, taken := s.seen[id]; !taken {
			break
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
	s.seen[id] = struct{}{}
	return id
}

// SecurityRules converts security pattern records to rules, one per record,
// in input order. Regexes with a native translation for the record's language
// become pattern rules; the rest carry the raw regex as pattern-regex. The
// record's category falls back to baseCategory, which also names the scanner.
func (s *Synthesizer) SecurityRules(records []ragparse.PatternRecord, baseCategory string) []Rule {
	var rules []Rule

	for i, p := range records {
		category := p.Category
		if category == "" {
			category = baseCategory
		}
		description := p.Description
		if description == "" {
			description = fmt.Sprintf("%s security issue", category)
		}

		slug := Slug(description)
		if slug == "" {
			slug = fmt.Sprintf("pattern-%d", i)
		}
		id := s.uniqueID(fmt.Sprintf("%s.%s.%s", s.prefix, category, slug))

		rule := Rule{
			ID:        id,
			Message:   description,
			Severity:  MapSeverity(p.Severity),
			Languages: NormalizeLanguages(p.Languages),
			Metadata: RuleMetadata{
				Category:   category,
				Confidence: p.Confidence,
				Scanner:    baseCategory,
				CWE:        p.CWE,
				OWASP:      p.OWASP,
			},
		}
		if native, ok := translateForLanguages(p.Regex, rule.Languages); ok {
			rule.Pattern = native
		} else {
			rule.PatternRegex = p.Regex
		}
		rules = append(rules, rule)
	}

	return rules
}

// translateForLanguages attempts a native translation when the record's
// languages share one translation catalogue: a single language, or the
// javascript/typescript pair produced by the co-occurrence rule. Records
// spanning unrelated languages keep the raw regex.
func translateForLanguages(regex string, languages []string) (string, bool) {
	if len(languages) == 1 {
		return Translate(regex, languages[0])
	}
	if len(languages) == 2 && contains(languages, "javascript") && contains(languages, "typescript") {
		return Translate(regex, "javascript")
	}
	return "", false
}

// TechnologyRules converts a technology descriptor to rules: one import
// detection rule per language with translatable patterns, and one secret
// detection rule per secret triple. A descriptor without a name yields
// nothing. The baseID carries the corpus-relative document path.
func (s *Synthesizer) TechnologyRules(desc *ragparse.TechnologyDescriptor, baseID string) []Rule {
	if desc.Name == "" {
		return nil
	}

	var rules []Rule
	techID := Slug(desc.Name)
	category := desc.Category
	if category == "" {
		category = "unknown"
	}

	// Import rules are grouped per language; regexes with no native
	// translation are skipped.
	confidence, ok := desc.Confidence["import_detection"]
	if !ok {
		confidence = 90
	}

	for _, lang := range ragparse.ImportLanguages {
		var patterns []string
		for _, regex := range desc.Imports[lang.Key] {
			if native, ok := Translate(regex, lang.Key); ok {
				patterns = append(patterns, native)
			}
		}
		if len(patterns) == 0 {
			continue
		}

		rule := Rule{
			ID:        s.uniqueID(fmt.Sprintf("%s.%s.import.%s", baseID, techID, lang.Key)),
			Message:   fmt.Sprintf("%s library import detected", desc.Name),
			Severity:  SeverityInfo,
			Languages: []string{lang.Key},
			Metadata: RuleMetadata{
				Technology:    desc.Name,
				Category:      category,
				DetectionType: "import",
				Confidence:    confidence,
			},
		}
		if len(patterns) == 1 {
			rule.Pattern = patterns[0]
		} else {
			for _, p := range patterns {
				rule.PatternEither = append(rule.PatternEither, PatternAlt{Pattern: p})
			}
		}
		rules = append(rules, rule)
	}

	for _, secret := range desc.Secrets {
		rules = append(rules, Rule{
			ID:        s.uniqueID(fmt.Sprintf("%s.%s.secret.%s", baseID, techID, Slug(secret.Name))),
			Message:   fmt.Sprintf("Potential %s %s exposed", desc.Name, secret.Name),
			Severity:  MapSeverity(secret.Severity),
			Languages: []string{"generic"},
			Metadata: RuleMetadata{
				Technology: desc.Name,
				Category:   "secrets",
				SecretType: secret.Name,
				Confidence: 95,
			},
			PatternRegex: secret.Pattern,
		})
	}

	return rules
}
