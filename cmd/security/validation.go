package security

import (
	"fmt"
)

// validateSecurityArgs validates the arguments provided to the security command.
func validateSecurityArgs(options *RunOptionsSecurity, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("a single rag directory argument must be specified")
	}

	if options.OutputFile == "" {
		return fmt.Errorf("the 'output' flag must be specified")
	}

	return nil
}
