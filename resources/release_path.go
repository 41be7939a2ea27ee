//go:build release

package resources

import (
	"fmt"
	"os"
	"path/filepath"
)

// release builds keep resources in the user's configuration directory
const configDir = "simon"

func resourcePath() (string, error) {
	p, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no configuration directory for release build: %w", err)
	}
	return filepath.Join(p, configDir), nil
}
