//go:build !release

package resources

// development builds keep resources in the current working directory
const configDir = ".simon"

func resourcePath() (string, error) {
	return configDir, nil
}
