//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Launch is a stub function for when statsview is not available
func Launch(output io.Writer) {
	fmt.Fprintln(output, "stats server not available in this build")
}

// Available returns false because the statsview build tag was not used
func Available() bool {
	return false
}
