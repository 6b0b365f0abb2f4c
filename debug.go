package stickr

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the engine's default logger. Debug output is only
// produced after SetDebugMode(true).
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          "stickr",
		Level:           level,
	})
}

// LogState writes the current transform at info level. Hosts call it from
// their own debug overlays or at the end of a replay.
func (e *Engine) LogState(l *log.Logger) {
	if l == nil {
		l = e.logger
	}
	st := e.State()
	first, second := e.Pointers()
	l.Info("transform",
		"mode", e.mode,
		"tx", st.Translation.X, "ty", st.Translation.Y,
		"scale", st.Scale,
		"rotation", st.Rotation,
		"tiltX", st.TiltX, "tiltY", st.TiltY,
		"first", first, "second", second,
	)
}
