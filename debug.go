package layerkit

import (
	"fmt"
	"os"
)

// debugGesturesEnabled gates debugLogf, the tracing used by TouchDispatcher
// and EventQueue. Off by default; LayerRoot sets it from
// GesturesConfiguration.DebugGestures.
var debugGesturesEnabled bool

// debugLogf prints a trace line to stderr when gesture debug tracing is on.
func debugLogf(format string, args ...any) {
	if !debugGesturesEnabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[layerkit] "+format+"\n", args...)
}
