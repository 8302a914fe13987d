package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName is the folder created under the user's home directory.
	DefaultDirName = ".hari"
	// HomeEnv overrides the base directory when set to a non-empty value.
	HomeEnv = "HARI_HOME"
)

// ResolveBasePath returns the absolute directory holding config.yaml and
// saved reports: $HARI_HOME when set, otherwise ~/.hari.
func ResolveBasePath() (string, error) {
	override := strings.TrimSpace(os.Getenv(HomeEnv))
	if override == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home directory: %w", err)
		}
		return filepath.Join(home, DefaultDirName), nil
	}

	path, err := expandPath(override)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", HomeEnv, err)
	}
	return path, nil
}

// expandPath expands $VARS and a leading ~ then makes the result absolute.
func expandPath(input string) (string, error) {
	input = os.ExpandEnv(input)
	if input == "~" || strings.HasPrefix(input, "~/") || strings.HasPrefix(input, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, input[1:])
	}
	return filepath.Abs(input)
}
