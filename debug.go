package diskgrid

import (
	"fmt"
	"os"
)

// logDebugf writes a debug-mode line to stderr, tagged like the rest of the
// package's diagnostics.
func logDebugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[diskgrid] "+format+"\n", args...)
}

// warnf writes a warning line to stderr regardless of debug mode — used for
// conditions a caller should notice even without opting into per-frame
// logging, such as a rejected non-finite camera update (spec.md §5.2).
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[diskgrid] warning: "+format+"\n", args...)
}
