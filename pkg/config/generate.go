package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/tagline/pkg/errors"
)

// GenerateConfigContent generates the configuration file content with
// commented-out values, ready to be dropped into the user's config dir.
func GenerateConfigContent() (string, error) {
	// The emitted file must stay in sync with the embedded defaults;
	// a defaults file that no longer parses is a packaging bug.
	var cfg Config
	if err := toml.Unmarshal(defaultConfig, &cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrConfigParse, "embedded defaults are not valid TOML")
	}
	return commentOutConfigValues(string(defaultConfig)), nil
}

// commentOutConfigValues takes the TOML content and comments out all
// non-comment, non-blank lines that contain configuration values
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g. [markup], [tags]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
