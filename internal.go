package queuelog

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

const logFileMode os.FileMode = 0o644

// fileSink opens its path lazily, in append mode. The path is looked up on
// every write until one is known, so a path supplied by a later Setup still
// takes effect; lines written while it is empty are skipped. If the open fails
// the sink stays disabled for the rest of the writer's lifetime.
type fileSink struct {
	path     func() string
	file     *os.File
	disabled bool
	diag     *zerolog.Logger
}

func newFileSink(path func() string, diag *zerolog.Logger) *fileSink {
	return &fileSink{path: path, diag: diag}
}

func (s *fileSink) Rendering() Rendering { return RenderPlain }

func (s *fileSink) WriteLine(line string) error {
	if s.disabled {
		return nil
	}
	if s.file == nil {
		path := s.path()
		if path == emptyString {
			return nil
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
		if err != nil {
			s.disabled = true
			s.diag.Warn().Err(err).Str("path", path).Msg("log file unavailable, file output disabled")
			return nil
		}
		s.file = f
	}
	_, err := s.file.WriteString(line)
	return err
}

func (s *fileSink) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// initializeSinks builds the sink list in write order: console, file, then
// any injected sinks. The file sink is always present and reads the current
// path through FilePath.
func (s *Service) initializeSinks() []Sink {
	var console io.Writer = s.Console
	if console == nil {
		console = colorable.NewColorableStdout()
	}

	sinks := []Sink{&consoleSink{w: console}, newFileSink(s.FilePath, s.diag)}
	return append(sinks, s.Sinks...)
}
