package magicset

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/magicset/internal/games/magicset/engine"
)

// TraceSink logs every engine notification at debug level.
type TraceSink struct {
	logger *log.Logger
}

// NewTraceSink creates a sink writing to w.
func NewTraceSink(w io.Writer) *TraceSink {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "magicset-trace",
		Level:           log.DebugLevel,
	})
	return &TraceSink{logger: logger}
}

// NewTraceSinkWithLogger wraps an existing logger.
func NewTraceSinkWithLogger(l *log.Logger) *TraceSink {
	return &TraceSink{logger: l}
}

// HandleEvents implements EventSink.
func (s *TraceSink) HandleEvents(tick uint64, events []engine.Event) {
	for _, e := range events {
		s.logger.Debug(e.Kind.String(), "tick", tick, "event", e.String())
	}
}
