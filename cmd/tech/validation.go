package tech

import (
	"fmt"
)

// validateTechArgs validates the arguments provided to the tech command.
func validateTechArgs(options *RunOptionsTech, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("a single rag directory argument must be specified")
	}

	if options.OutputDir == "" {
		return fmt.Errorf("the 'output' flag must be specified")
	}

	return nil
}
