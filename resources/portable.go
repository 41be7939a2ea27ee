package resources

import (
	"os"
	"path/filepath"
)

const portableMarker = "portable.txt"

// the portable path is set by checkPortable() if the marker file is found
var portablePath string

func checkPortable() bool {
	if portablePath != "" {
		return true
	}

	exe, err := os.Executable()
	if err != nil {
		return false
	}

	dir := filepath.Dir(exe)
	if _, err := os.Stat(filepath.Join(dir, portableMarker)); err != nil {
		return false
	}

	portablePath = filepath.Join(dir, "Simon_UserData")
	return true
}
