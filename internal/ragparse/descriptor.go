package ragparse

import (
	"regexp"
	"strconv"
	"strings"
)

// SecretPattern is one secret detection triple from a Secrets Detection
// section. Severity is stored uppercased.
type SecretPattern struct {
	Name     string
	Pattern  string
	Severity string
}

// TechnologyDescriptor is a parsed technology pattern document. Every list
// and mapping is initialized, never nil, so consumers only check emptiness.
type TechnologyDescriptor struct {
	Name        string
	Category    string
	Description string
	Packages    map[string][]string
	Imports     map[string][]string
	EnvVars     []string
	Secrets     []SecretPattern
	Confidence  map[string]int
}

// PackageEcosystems enumerates the package sub-sections recognized in a
// Package Detection section, in document order.
var PackageEcosystems = []struct{ Heading, Key string }{
	{"### NPM", "npm"},
	{"### PYPI", "pypi"},
	{"### Go", "go"},
	{"### RubyGems", "rubygems"},
	{"### Maven", "maven"},
}

// ImportLanguages enumerates the per-language sub-sections recognized in an
// Import Detection section, in document order.
var ImportLanguages = []struct{ Heading, Key string }{
	{"### Python", "python"},
	{"### Javascript", "javascript"},
	{"### Go", "go"},
	{"### Ruby", "ruby"},
	{"### Java", "java"},
}

var (
	boldCategoryRe    = regexp.MustCompile(`\*\*Category\*\*:\s*(.+)`)
	boldDescriptionRe = regexp.MustCompile(`\*\*Description\*\*:\s*(.+)`)
	listItemRe        = regexp.MustCompile("(?m)^-\\s*`([^`]+)`")
	boldPatternRe     = regexp.MustCompile("\\*\\*Pattern\\*\\*:\\s*`([^`]+)`")
	boldSeverityRe    = regexp.MustCompile(`\*\*Severity\*\*:\s*(\w+)`)
	confidenceLineRe  = regexp.MustCompile(`\*\*([^*]+)\*\*:\s*(\d+)%`)
)

// ParseDescriptor parses a technology patterns.md document. A descriptor
// without a top-level name is returned as-is; the synthesizer discards it.
func ParseDescriptor(content string) *TechnologyDescriptor {
	desc := &TechnologyDescriptor{
		Packages: map[string][]string{
			"npm": {}, "pypi": {}, "go": {}, "rubygems": {}, "maven": {},
		},
		Imports: map[string][]string{
			"python": {}, "javascript": {}, "go": {}, "ruby": {}, "java": {},
		},
		EnvVars:    []string{},
		Secrets:    []SecretPattern{},
		Confidence: map[string]int{},
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") {
			desc.Name = strings.TrimSpace(line[2:])
			break
		}
	}

	if m := boldCategoryRe.FindStringSubmatch(content); m != nil {
		desc.Category = strings.TrimSpace(m[1])
	}
	if m := boldDescriptionRe.FindStringSubmatch(content); m != nil {
		desc.Description = strings.TrimSpace(m[1])
	}

	parsePackages(desc, content)
	parseImports(desc, content)
	parseEnvVars(desc, content)
	parseSecrets(desc, content)
	parseConfidence(desc, content)

	return desc
}

func parsePackages(desc *TechnologyDescriptor, content string) {
	section := Section(content, "## Package Detection")
	if section == "" {
		return
	}
	for _, eco := range PackageEcosystems {
		sub := Section(section, eco.Heading)
		for _, m := range listItemRe.FindAllStringSubmatch(sub, -1) {
			desc.Packages[eco.Key] = append(desc.Packages[eco.Key], m[1])
		}
	}
}

func parseImports(desc *TechnologyDescriptor, content string) {
	section := Section(content, "## Import Detection")
	if section == "" {
		return
	}
	for _, lang := range ImportLanguages {
		sub := Section(section, lang.Heading)
		for _, m := range boldPatternRe.FindAllStringSubmatch(sub, -1) {
			desc.Imports[lang.Key] = append(desc.Imports[lang.Key], m[1])
		}
	}
}

func parseEnvVars(desc *TechnologyDescriptor, content string) {
	section := Section(content, "## Environment Variables")
	for _, m := range listItemRe.FindAllStringSubmatch(section, -1) {
		desc.EnvVars = append(desc.EnvVars, m[1])
	}
}

// parseSecrets collects `#### name` sub-blocks from the Secrets Detection
// section. A sub-block missing either its pattern or its severity is skipped;
// malformed entries never abort the document.
func parseSecrets(desc *TechnologyDescriptor, content string) {
	section := Section(content, "## Secrets Detection")
	if section == "" {
		return
	}

	lines := strings.Split(section, "\n")
	for i := 0; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i], "#### ") {
			continue
		}
		name := strings.TrimSpace(lines[i][len("#### "):])

		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if strings.HasPrefix(lines[j], "#### ") {
				end = j
				break
			}
		}
		body := strings.Join(lines[i+1:end], "\n")
		i = end - 1

		patternMatch := boldPatternRe.FindStringSubmatch(body)
		severityMatch := boldSeverityRe.FindStringSubmatch(body)
		if patternMatch == nil || severityMatch == nil {
			continue
		}

		desc.Secrets = append(desc.Secrets, SecretPattern{
			Name:     name,
			Pattern:  strings.TrimSpace(patternMatch[1]),
			Severity: strings.ToUpper(strings.TrimSpace(severityMatch[1])),
		})
	}
}

func parseConfidence(desc *TechnologyDescriptor, content string) {
	section := Section(content, "## Detection Confidence")
	for _, m := range confidenceLineRe.FindAllStringSubmatch(section, -1) {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(m[1])), " ", "_")
		if score, err := strconv.Atoi(m[2]); err == nil {
			desc.Confidence[key] = score
		}
	}
}
