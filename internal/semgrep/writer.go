package semgrep

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v2"

	"github.com/scanforge/scanforge/pkg/shared/files"
)

// WriteRulesFile serializes rules as a Semgrep YAML rules document at path,
// creating parent directories as needed.
func WriteRulesFile(path string, rules []Rule) error {
	if err := files.CreateFolderIfNotExists(filepath.Dir(path)); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create rules file %q: %w", path, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	defer encoder.Close()

	if err := encoder.Encode(RulesFile{Rules: rules}); err != nil {
		return fmt.Errorf("failed to encode rules file %q: %w", path, err)
	}
	return nil
}
