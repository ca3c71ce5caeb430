// Package semgrep synthesizes Semgrep rule documents from extracted RAG
// pattern data: regex-to-pattern translation, severity and language mapping,
// collision-safe rule ids, and the YAML rules-file writer.
package semgrep

// Semgrep severity levels.
const (
	SeverityError   = "ERROR"
	SeverityWarning = "WARNING"
	SeverityInfo    = "INFO"
)

// PatternAlt is one alternative inside a pattern-either group.
type PatternAlt struct {
	Pattern string `yaml:"pattern"`
}

// RuleMetadata carries the auxiliary fields attached to a rule. Optional
// fields are omitted from the YAML when empty.
type RuleMetadata struct {
	Technology    string   `yaml:"technology,omitempty"`
	Category      string   `yaml:"category,omitempty"`
	SecretType    string   `yaml:"secret_type,omitempty"`
	DetectionType string   `yaml:"detection_type,omitempty"`
	DebtType      string   `yaml:"debt_type,omitempty"`
	Priority      string   `yaml:"priority,omitempty"`
	Confidence    int      `yaml:"confidence,omitempty"`
	Scanner       string   `yaml:"scanner,omitempty"`
	CWE           []string `yaml:"cwe,omitempty"`
	OWASP         []string `yaml:"owasp,omitempty"`
}

// Rule is a single Semgrep rule. Exactly one of Pattern, PatternEither or
// PatternRegex is set. Struct field order fixes the emitted YAML field order.
type Rule struct {
	ID            string       `yaml:"id"`
	Message       string       `yaml:"message"`
	Severity      string       `yaml:"severity"`
	Languages     []string     `yaml:"languages"`
	Metadata      RuleMetadata `yaml:"metadata"`
	Pattern       string       `yaml:"pattern,omitempty"`
	PatternEither []PatternAlt `yaml:"pattern-either,omitempty"`
	PatternRegex  string       `yaml:"pattern-regex,omitempty"`
}

// RulesFile is the top-level document of a Semgrep rules file.
type RulesFile struct {
	Rules []Rule `yaml:"rules"`
}
