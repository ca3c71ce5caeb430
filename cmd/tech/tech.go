package tech

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scanforge/scanforge/internal/compiler"
	"github.com/scanforge/scanforge/internal/sarif"
	"github.com/scanforge/scanforge/internal/semgrep"
	"github.com/scanforge/scanforge/pkg/shared"
	"github.com/scanforge/scanforge/pkg/shared/config"
	"github.com/scanforge/scanforge/pkg/shared/files"
	"github.com/scanforge/scanforge/pkg/shared/logger"
)

// RunOptionsTech holds the arguments for the tech command.
type RunOptionsTech struct {
	OutputDir   string
	SarifReport string
}

var (
	AppConfig        *config.Config
	techOptions      RunOptionsTech
	exampleTechUsage = `  # Compiling a technology-identification corpus into bucketed rule files
  scanforge tech ./rag/technology-identification --output ./rules

  # Additionally exporting the rule catalogue as SARIF
  scanforge tech ./rag/technology-identification -o ./rules --sarif-report ./rules/catalog.sarif`
)

// TechCmd represents the tech command.
var TechCmd = &cobra.Command{
	Use:                   "tech --output/-o DIR [--sarif-report PATH] RAG_DIR",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleTechUsage,
	Short:                 "Compile technology descriptors into bucketed Semgrep rule files",
	RunE:                  runTechCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runTechCommand executes the tech command.
func runTechCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-tech")

	if err := validateTechArgs(&techOptions, args); err != nil {
		logger.Error("invalid tech arguments", "error", err)
		return err
	}

	ragDir, err := files.ExpandPath(args[0])
	if err != nil {
		return err
	}

	buckets, err := compiler.CompileTechnologyCorpus(ragDir, AppConfig.Rules.IDPrefix, logger)
	if err != nil {
		logger.Error("technology compilation failed", "directory", ragDir, "error", err)
		return err
	}

	total := 0
	for _, bucket := range compiler.Buckets {
		rules := buckets[bucket]
		total += len(rules)
		if len(rules) == 0 {
			continue
		}
		outputFile := filepath.Join(techOptions.OutputDir, bucket+".yaml")
		if err := semgrep.WriteRulesFile(outputFile, rules); err != nil {
			logger.Error("failed to write rules file", "path", outputFile, "error", err)
			return err
		}
		fmt.Printf("Wrote %d rules to %s\n", len(rules), outputFile)
	}

	if techOptions.SarifReport != "" {
		var all []semgrep.Rule
		for _, bucket := range compiler.Buckets {
			all = append(all, buckets[bucket]...)
		}
		if err := sarif.WriteCatalog(techOptions.SarifReport, "scanforge", all); err != nil {
			logger.Error("failed to write SARIF catalogue", "path", techOptions.SarifReport, "error", err)
			return err
		}
		fmt.Printf("Wrote SARIF rule catalogue to %s\n", techOptions.SarifReport)
	}

	printTechSummary(buckets, total)
	logger.Info("tech command completed successfully")
	return nil
}

// printTechSummary reports rule counts per bucket. Printed on every
// successful run, including empty ones.
func printTechSummary(buckets map[string][]semgrep.Rule, total int) {
	fmt.Printf("\nTotal: %d Semgrep rules generated\n", total)
	for _, bucket := range compiler.Buckets {
		fmt.Printf("  - %s: %d rules\n", bucket, len(buckets[bucket]))
	}
}

// Initialize flags for the tech command.
func init() {
	TechCmd.Flags().StringVarP(&techOptions.OutputDir, "output", "o", "", "Path to the output directory for bucketed rule files.")
	TechCmd.Flags().StringVar(&techOptions.SarifReport, "sarif-report", "", "Optional path for a SARIF rule catalogue export.")
	TechCmd.Flags().BoolP("help", "h", false, "Show help for the tech command.")
}
