package queuelog

import (
	"io"
)

// Sink is a destination for formatted log lines. Sinks are only ever called
// from the writer goroutine, so implementations need no locking of their own.
type Sink interface {
	// Rendering reports which precomputed form of an entry the sink wants.
	Rendering() Rendering
	// WriteLine writes one newline-terminated line.
	WriteLine(line string) error
	// Close releases the sink once the writer has drained the queue.
	Close() error
}

// writerSink adapts an io.Writer.
type writerSink struct {
	w         io.Writer
	rendering Rendering
}

// NewWriterSink returns a Sink writing the given rendering of each entry to w.
// Closing the sink closes w when it implements io.Closer.
func NewWriterSink(w io.Writer, r Rendering) Sink {
	return &writerSink{w: w, rendering: r}
}

func (s *writerSink) Rendering() Rendering { return s.rendering }

func (s *writerSink) WriteLine(line string) error {
	_, err := io.WriteString(s.w, line)
	return err
}

func (s *writerSink) Close() error {
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// consoleSink writes the colored rendering and never closes its target,
// which is usually the process stdout.
type consoleSink struct {
	w io.Writer
}

func (s *consoleSink) Rendering() Rendering { return RenderColored }

func (s *consoleSink) WriteLine(line string) error {
	_, err := io.WriteString(s.w, line)
	return err
}

func (s *consoleSink) Close() error { return nil }
