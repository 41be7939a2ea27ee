package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Read returns the contents of the named resource. A resource that does not
// exist is not an error and the empty string is returned
func Read(filename string) (string, error) {
	pth, err := JoinPath(filename)
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	b, err := os.ReadFile(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("resources: %w", err)
	}

	return string(b), nil
}

// Write replaces the contents of the named resource
func Write(filename string, content string) error {
	pth, err := JoinPath(filename)
	if err != nil {
		return fmt.Errorf("resources: %w", err)
	}

	err = os.WriteFile(pth, []byte(content), 0600)
	if err != nil {
		return fmt.Errorf("resources: %w", err)
	}

	return nil
}
