package fetch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/scanforge/scanforge/internal/git"
	"github.com/scanforge/scanforge/pkg/shared"
	"github.com/scanforge/scanforge/pkg/shared/config"
	"github.com/scanforge/scanforge/pkg/shared/files"
	"github.com/scanforge/scanforge/pkg/shared/logger"
)

// RunOptionsFetch holds the arguments for the fetch command.
type RunOptionsFetch struct {
	TargetFolder string
	Branch       string
}

var (
	AppConfig         *config.Config
	fetchOptions      RunOptionsFetch
	exampleFetchUsage = `  # Fetching a pattern corpus repository into a temporary folder
  scanforge fetch https://github.com/org/security-rag.git

  # Fetching a specific branch into a chosen folder
  scanforge fetch https://github.com/org/security-rag.git -o ./rag -b main`
)

// FetchCmd represents the fetch command.
var FetchCmd = &cobra.Command{
	Use:                   "fetch [--output/-o DIR] [--branch/-b NAME] CLONE_URL",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleFetchUsage,
	Short:                 "Fetch a pattern corpus repository for local compilation",
	RunE:                  runFetchCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runFetchCommand executes the fetch command.
func runFetchCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-fetch")

	if err := validateFetchArgs(&fetchOptions, args); err != nil {
		logger.Error("invalid fetch arguments", "error", err)
		return err
	}

	targetFolder := fetchOptions.TargetFolder
	if targetFolder == "" {
		jobID := uuid.New()
		targetFolder = filepath.Join(os.TempDir(), "scanforge", jobID.String())
		logger.Debug("no target folder given, using a temporary one", "jobID", jobID, "targetFolder", targetFolder)
	}
	targetFolder, err := files.ExpandPath(targetFolder)
	if err != nil {
		return err
	}

	client := git.NewClient(AppConfig, logger)
	folder, err := client.CloneRepository(args[0], targetFolder, fetchOptions.Branch)
	if err != nil {
		logger.Error("fetch command failed", "error", err)
		return err
	}

	fmt.Printf("Fetched %s into %s\n", args[0], folder)
	logger.Info("fetch command completed successfully")
	return nil
}

// Initialize flags for the fetch command.
func init() {
	FetchCmd.Flags().StringVarP(&fetchOptions.TargetFolder, "output", "o", "", "Directory to clone the corpus repository into.")
	FetchCmd.Flags().StringVarP(&fetchOptions.Branch, "branch", "b", "", "Branch to fetch. Defaults to the remote default branch.")
	FetchCmd.Flags().BoolP("help", "h", false, "Show help for the fetch command.")
}
