package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scanforge/scanforge/cmd/fetch"
	"github.com/scanforge/scanforge/cmd/security"
	"github.com/scanforge/scanforge/cmd/tech"
	"github.com/scanforge/scanforge/cmd/version"
	"github.com/scanforge/scanforge/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "scanforge [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Scanforge compiles RAG pattern documentation into Semgrep rules.",
		Long: `Scanforge compiles human-authored RAG pattern markdown (security pattern
	sets and technology descriptors) into Semgrep YAML rule files.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(security.SecurityCmd)
	rootCmd.AddCommand(tech.TechCmd)
	rootCmd.AddCommand(fetch.FetchCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.NewConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config file %q: %v\n", cfgFile, err)
		os.Exit(1)
	}

	security.Init(AppConfig)
	tech.Init(AppConfig)
	fetch.Init(AppConfig)
	version.Init(AppConfig)
}
