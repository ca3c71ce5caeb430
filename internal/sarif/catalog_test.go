package sarif

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanforge/scanforge/internal/semgrep"
)

func TestWriteCatalog(t *testing.T) {
	rules := []semgrep.Rule{
		{
			ID:        "scanforge.secrets.aws-key",
			Message:   "Potential AWS Key exposed",
			Severity:  semgrep.SeverityError,
			Languages: []string{"generic"},
			Metadata:  semgrep.RuleMetadata{Category: "secrets", Technology: "AWS"},
		},
		{
			ID:        "scanforge.tech-debt.todo",
			Message:   "TODO marker found: $MSG",
			Severity:  semgrep.SeverityInfo,
			Languages: []string{"generic"},
			Metadata:  semgrep.RuleMetadata{Category: "tech-debt"},
		},
	}

	path := filepath.Join(t.TempDir(), "report", "catalog.sarif")
	require.NoError(t, WriteCatalog(path, "scanforge", rules))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID                   string `json:"id"`
						DefaultConfiguration struct {
							Level string `json:"level"`
						} `json:"defaultConfiguration"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, "2.1.0", report.Version)
	require.Len(t, report.Runs, 1)
	driver := report.Runs[0].Tool.Driver
	assert.Equal(t, "scanforge", driver.Name)
	require.Len(t, driver.Rules, 2)
	assert.Equal(t, "scanforge.secrets.aws-key", driver.Rules[0].ID)
	assert.Equal(t, "error", driver.Rules[0].DefaultConfiguration.Level)
	assert.Equal(t, "note", driver.Rules[1].DefaultConfiguration.Level)
}

func TestToSarifLevel(t *testing.T) {
	assert.Equal(t, "error", toSarifLevel(semgrep.SeverityError))
	assert.Equal(t, "warning", toSarifLevel(semgrep.SeverityWarning))
	assert.Equal(t, "note", toSarifLevel(semgrep.SeverityInfo))
}
