// Package sarif exports synthesized rule sets as a SARIF 2.1.0 rule
// catalogue for toolchains that ingest SARIF tool metadata.
package sarif

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scanforge/scanforge/internal/semgrep"
	"github.com/scanforge/scanforge/pkg/shared/files"
)

const informationURI = "https://github.com/scanforge/scanforge"

// WriteCatalog writes a SARIF report whose tool driver declares one
// reportingDescriptor per rule, in input order, with the rule's Semgrep
// severity mapped to the SARIF default level.
func WriteCatalog(path, toolName string, rules []semgrep.Rule) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, informationURI)
	for _, rule := range rules {
		properties := sarif.Properties{
			"category":  rule.Metadata.Category,
			"languages": rule.Languages,
		}
		if rule.Metadata.Technology != "" {
			properties["technology"] = rule.Metadata.Technology
		}

		run.AddRule(rule.ID).
			WithDescription(rule.Message).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: toSarifLevel(rule.Severity),
			}).
			WithProperties(properties)
	}
	report.AddRun(run)

	if err := files.CreateFolderIfNotExists(filepath.Dir(path)); err != nil {
		return err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error writing SARIF report: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := report.PrettyWrite(file); err != nil {
		return fmt.Errorf("failed to serialize SARIF report: %w", err)
	}
	return nil
}

// toSarifLevel maps a Semgrep severity to a SARIF reporting level.
func toSarifLevel(severity string) string {
	switch severity {
	case semgrep.SeverityError:
		return "error"
	case semgrep.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}
