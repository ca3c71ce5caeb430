package semgrep

// TechDebtRules returns the built-in tech debt marker ruleset. The ids are
// registered with the synthesizer's run-scoped set like any generated id.
func (s *Synthesizer) TechDebtRules() []Rule {
	return []Rule{
		{
			ID:        s.uniqueID(s.prefix + ".tech-debt.todo"),
			Message:   "TODO marker found: $MSG",
			Severity:  SeverityInfo,
			Languages: []string{"generic"},
			Metadata: RuleMetadata{
				Category: "tech-debt",
				DebtType: "todo",
				Priority: "low",
			},
			PatternRegex: `TODO[:\s]+(.+?)(?:\n|$)`,
		},
		{
			ID:        s.uniqueID(s.prefix + ".tech-debt.fixme"),
			Message:   "FIXME marker found: $MSG",
			Severity:  SeverityWarning,
			Languages: []string{"generic"},
			Metadata: RuleMetadata{
				Category: "tech-debt",
				DebtType: "fixme",
				Priority: "medium",
			},
			PatternRegex: `FIXME[:\s]+(.+?)(?:\n|$)`,
		},
		{
			ID:        s.uniqueID(s.prefix + ".tech-debt.hack"),
			Message:   "HACK marker found",
			Severity:  SeverityWarning,
			Languages: []string{"generic"},
			Metadata: RuleMetadata{
				Category: "tech-debt",
				DebtType: "hack",
				Priority: "high",
			},
			PatternRegex: `HACK[:\s]+(.+?)(?:\n|$)`,
		},
		{
			ID:        s.uniqueID(s.prefix + ".tech-debt.xxx"),
			Message:   "XXX marker found (needs attention)",
			Severity:  SeverityWarning,
			Languages: []string{"generic"},
			Metadata: RuleMetadata{
				Category: "tech-debt",
				DebtType: "xxx",
				Priority: "high",
			},
			PatternRegex: `XXX[:\s]+(.+?)(?:\n|$)`,
		},
		{
			ID:        s.uniqueID(s.prefix + ".tech-debt.deprecated-decorator"),
			Message:   "@deprecated usage found",
			Severity:  SeverityInfo,
			Languages: []string{"python", "javascript", "typescript"},
			Metadata: RuleMetadata{
				Category: "tech-debt",
				DebtType: "deprecated",
				Priority: "medium",
			},
			Pattern: "@deprecated",
		},
	}
}
