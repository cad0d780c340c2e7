package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/safmod/saf-pathways/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport resolves the formatter for the requested format and writes
// the results to a timestamped file.
func GenerateReport(results *domain.ScenarioComparison, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	_, err := WriteFormatted(f, results, extensionFor(f.Name()))
	return err
}

func extensionFor(name string) string {
	switch {
	case strings.Contains(name, "csv"):
		return "csv"
	case name == "json":
		return "json"
	case name == "html":
		return "html"
	default:
		return "txt"
	}
}

// SaveConfiguration writes a run configuration back to a YAML file, so a
// defaults-based run can be captured and tweaked.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
