package components

import (
	"fmt"
	"os"
)

// diag writes one `# `-prefixed diagnostic line to stderr. Run commentary
// (progress, per-file counts, interruption notices) goes through here so it
// never mixes with the data outputs.
func diag(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "# "+format+"\n", args...)
}
