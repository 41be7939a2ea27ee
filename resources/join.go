package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// basePath returns the directory that all resources are stored in. The
// portable directory takes precedence over the build specific directory
func basePath() (string, error) {
	if checkPortable() {
		return portablePath, nil
	}
	return resourcePath()
}

// JoinPath prepends the supplied path with the base path for resources. The
// base path is not added a second time if the path already begins with it.
//
// Directories leading up to the final path element are created as necessary.
// The final element itself is never created
func JoinPath(path ...string) (string, error) {
	b, err := basePath()
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	p := filepath.Join(path...)
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return p, nil
}
