package queuelog

import (
	stderrs "errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

var (
	// ErrStopped is returned by Setup and Stop once the service has been stopped.
	ErrStopped = stderrs.New("queuelog: service already stopped")
	// ErrNotStarted is returned by Stop when Setup was never called.
	ErrNotStarted = stderrs.New("queuelog: service not started")
)

// State is the lifecycle position of a Service. A service only moves forward.
type State int32

const (
	StateNew State = iota
	StateRunning
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Stats is a snapshot of the service counters.
type Stats struct {
	Enqueued uint64
	Written  uint64
	Dropped  uint64
}

// Service queues log entries from any goroutine and writes them from a single
// writer goroutine to the console, the log file and any extra sinks.
//
// The exported fields must be set before Setup and not touched afterwards.
type Service struct {
	// Console receives the colored rendering. Nil means stdout.
	Console io.Writer
	// Sinks are written after the console and the file, in order.
	Sinks []Sink
	// Diagnostics receives the service's own problems (file open failures,
	// misuse). Nil discards them.
	Diagnostics *zerolog.Logger
	// Clock supplies entry timestamps. Nil means time.Now.
	Clock func() time.Time

	// mu guards everything below it, the queue and the lifecycle state included.
	mu           sync.Mutex
	cond         *sync.Cond
	queue        entryQueue
	state        State
	filePath     string
	colored      bool
	debugEnabled bool
	done         chan struct{}
	diag         *zerolog.Logger

	enqueued       atomic.Uint64
	written        atomic.Uint64
	dropped        atomic.Uint64
	misuseReported atomic.Bool
}

func NewService() *Service {
	return &Service{}
}

// Setup configures the service and starts the writer goroutine.
//
// The file path is only set while it is still empty, so the first non-empty
// path wins; a path given after an empty one enables file output from the next
// write on. The colored and debug flags are always replaced and apply to
// entries queued from then on. Setup never starts a second writer.
func (s *Service) Setup(filePath string, colored, debug bool) error {
	const op errors.Op = "queuelog.Service.Setup"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateStopping || s.state == StateStopped {
		return ErrStopped
	}

	if s.filePath == emptyString {
		s.filePath = filePath
	}
	s.colored = colored
	s.debugEnabled = debug
	if s.state == StateRunning {
		return nil
	}

	s.ensureCond()
	s.diag = s.diagnostics()

	sinks := s.initializeSinks()
	s.done = make(chan struct{})
	s.state = StateRunning
	go s.run(sinks, s.diag, s.done)

	s.diag.Debug().
		Str("file", s.filePath).
		Bool("colored", colored).
		Bool("debug", debug).
		Int("sinks", len(sinks)).
		Msg("log writer started")
	return nil
}

// SetupWithConfig validates cfg and calls Setup with its values.
func (s *Service) SetupWithConfig(cfg *Config) error {
	const op errors.Op = "queuelog.Service.SetupWithConfig"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}
	if err := validateConfig(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return s.Setup(cfg.FilePath, cfg.Colored, cfg.Debug)
}

// Emit queues message at the given level and returns without waiting for any
// I/O. Debug entries are discarded here unless debug output is enabled.
// Entries emitted after Stop are counted as dropped.
func (s *Service) Emit(level Level, message string) {
	if s == nil {
		return
	}

	s.mu.Lock()
	if s.state == StateStopping || s.state == StateStopped {
		s.mu.Unlock()
		s.reportDropped(level)
		return
	}
	if level == DebugLevel && !s.debugEnabled {
		s.mu.Unlock()
		return
	}
	s.ensureCond()
	s.queue.push(newEntry(s.now(), level, message, s.colored))
	s.enqueued.Inc()
	s.cond.Signal()
	s.mu.Unlock()
}

func (s *Service) Info(message string)  { s.Emit(InfoLevel, message) }
func (s *Service) Warn(message string)  { s.Emit(WarnLevel, message) }
func (s *Service) Debug(message string) { s.Emit(DebugLevel, message) }
func (s *Service) Err(message string)   { s.Emit(ErrorLevel, message) }

func (s *Service) Infof(format string, args ...interface{}) {
	s.Emit(InfoLevel, fmt.Sprintf(format, args...))
}

func (s *Service) Warnf(format string, args ...interface{}) {
	s.Emit(WarnLevel, fmt.Sprintf(format, args...))
}

// Debugf skips formatting entirely when debug output is disabled.
func (s *Service) Debugf(format string, args ...interface{}) {
	if s == nil || !s.DebugEnabled() {
		return
	}
	s.Emit(DebugLevel, fmt.Sprintf(format, args...))
}

func (s *Service) Errf(format string, args ...interface{}) {
	s.Emit(ErrorLevel, fmt.Sprintf(format, args...))
}

// Stop tells the writer to finish and blocks until every queued entry has
// been written and the sinks are closed. There is no timeout.
func (s *Service) Stop() error {
	const op errors.Op = "queuelog.Service.Stop"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	s.mu.Lock()
	switch s.state {
	case StateNew:
		s.mu.Unlock()
		return ErrNotStarted
	case StateStopping, StateStopped:
		s.mu.Unlock()
		return ErrStopped
	}
	s.state = StateStopping
	s.cond.Broadcast()
	done := s.done
	s.mu.Unlock()

	<-done

	s.mu.Lock()
	s.state = StateStopped
	s.mu.Unlock()
	return nil
}

// run is the writer loop. It keeps going while the service is running or
// entries are pending, so stopping never discards the backlog.
func (s *Service) run(sinks []Sink, diag *zerolog.Logger, done chan struct{}) {
	defer close(done)

	for {
		s.mu.Lock()
		for s.queue.len() == 0 && s.state == StateRunning {
			s.cond.Wait()
		}
		if s.queue.len() == 0 {
			s.mu.Unlock()
			break
		}
		batch := s.queue.takeAll()
		s.mu.Unlock()

		for i := range batch {
			writeEntry(sinks, &batch[i], diag)
		}
		s.written.Add(uint64(len(batch)))

		s.mu.Lock()
		s.queue.recycle(batch)
		s.mu.Unlock()
	}

	for _, sink := range sinks {
		if err := sink.Close(); err != nil {
			diag.Warn().Err(err).Msg("closing log sink")
		}
	}
}

// writeEntry hands e to every sink. A failing sink does not stop the others.
func writeEntry(sinks []Sink, e *Entry, diag *zerolog.Logger) {
	for _, sink := range sinks {
		if err := sink.WriteLine(e.Line(sink.Rendering())); err != nil {
			diag.Warn().Err(err).Str("level", e.Level.String()).Msg("log sink write failed")
		}
	}
}

func (s *Service) reportDropped(level Level) {
	s.dropped.Inc()
	if s.misuseReported.CompareAndSwap(false, true) {
		s.diag.Warn().Str("level", level.String()).Msg("entry emitted after Stop was dropped")
	}
}

// ensureCond must be called with mu held.
func (s *Service) ensureCond() {
	if s.cond == nil {
		s.cond = sync.NewCond(&s.mu)
	}
}

func (s *Service) diagnostics() *zerolog.Logger {
	if s.Diagnostics != nil {
		return s.Diagnostics
	}
	nop := zerolog.Nop()
	return &nop
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// State reports the current lifecycle state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Stats returns a snapshot of the enqueued, written and dropped counters.
func (s *Service) Stats() Stats {
	return Stats{
		Enqueued: s.enqueued.Load(),
		Written:  s.written.Load(),
		Dropped:  s.dropped.Load(),
	}
}

func (s *Service) DebugEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debugEnabled
}

func (s *Service) Colored() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colored
}

func (s *Service) FilePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filePath
}
