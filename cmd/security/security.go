package security

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/scanforge/scanforge/internal/compiler"
	"github.com/scanforge/scanforge/internal/semgrep"
	"github.com/scanforge/scanforge/pkg/shared"
	"github.com/scanforge/scanforge/pkg/shared/config"
	"github.com/scanforge/scanforge/pkg/shared/files"
	"github.com/scanforge/scanforge/pkg/shared/logger"
)

// RunOptionsSecurity holds the arguments for the security command.
type RunOptionsSecurity struct {
	OutputFile string
}

var (
	AppConfig            *config.Config
	securityOptions      RunOptionsSecurity
	exampleSecurityUsage = `  # Compiling an API security pattern set into one rules file
  scanforge security ./rag/api-security --output ./rules/api-security.yaml

  # Compiling a crypto pattern set
  scanforge security ./rag/crypto -o ./rules/crypto.yaml`
)

// SecurityCmd represents the security command.
var SecurityCmd = &cobra.Command{
	Use:                   "security --output/-o PATH RAG_DIR",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleSecurityUsage,
	Short:                 "Compile a security pattern directory into a Semgrep rules file",
	RunE:                  runSecurityCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runSecurityCommand executes the security command.
func runSecurityCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-security")

	if err := validateSecurityArgs(&securityOptions, args); err != nil {
		logger.Error("invalid security arguments", "error", err)
		return err
	}

	ragDir, err := files.ExpandPath(args[0])
	if err != nil {
		return err
	}

	rules, err := compiler.CompileSecurityCorpus(ragDir, AppConfig.Rules.IDPrefix, logger)
	if err != nil {
		logger.Error("security compilation failed", "directory", ragDir, "error", err)
		return err
	}

	if err := semgrep.WriteRulesFile(securityOptions.OutputFile, rules); err != nil {
		logger.Error("failed to write rules file", "path", securityOptions.OutputFile, "error", err)
		return err
	}

	printSecuritySummary(rules, securityOptions.OutputFile)
	logger.Info("security command completed successfully")
	return nil
}

// printSecuritySummary reports rule counts per category. Printed on every
// successful run, including empty ones.
func printSecuritySummary(rules []semgrep.Rule, outputFile string) {
	fmt.Printf("Wrote %d rules to %s\n", len(rules), outputFile)

	counts := compiler.CountByCategory(rules)
	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	fmt.Println("\nRules by category:")
	for _, category := range categories {
		fmt.Printf("  %s: %d\n", category, counts[category])
	}
}

// Initialize flags for the security command.
func init() {
	SecurityCmd.Flags().StringVarP(&securityOptions.OutputFile, "output", "o", "", "Path to the output Semgrep rules file.")
	SecurityCmd.Flags().BoolP("help", "h", false, "Show help for the security command.")
}
