package fetch

import (
	"fmt"
	"strings"
)

// validateFetchArgs validates the arguments provided to the fetch command.
func validateFetchArgs(options *RunOptionsFetch, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("a single clone URL argument must be specified")
	}

	if strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("the clone URL must not be empty")
	}

	return nil
}
