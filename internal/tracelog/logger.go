package tracelog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	base    = zerolog.New(io.Discard).With().Timestamp().Logger()
	enabled = false
)

// SetOutput points the package-level logger at w and enables it. Passing
// io.Discard disables logging again without changing the level.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(w).Level(base.GetLevel()).With().Timestamp().Logger()
	enabled = w != io.Discard
}

// SetLevel sets the minimum level the package-level logger emits.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	base = base.Level(level)
}

// Get returns a component-scoped child logger. Cheap to call repeatedly.
// The returned logger keeps the output and level in effect when Get was
// called; later SetOutput/SetLevel calls do not reach it.
func Get(component string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", component).Logger()
}

// Enabled reports whether a non-discard output has been configured. Call
// sites that build expensive log fields (e.g. rendering a full operand)
// should guard on this first.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func init() {
	if os.Getenv("DECIMALINT_DEBUG") != "" {
		SetOutput(os.Stderr)
		SetLevel(zerolog.DebugLevel)
	}
}
