package queuelog

// Logger is the producer side of a Service. Components take a Logger rather
// than a *Service so the owner of the service keeps control of Setup and Stop.
type Logger interface {
	Emit(level Level, message string)

	Info(message string)
	Warn(message string)
	Debug(message string)
	Err(message string)

	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Errf(format string, args ...interface{})
}

var _ Logger = (*Service)(nil)
