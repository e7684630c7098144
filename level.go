package queuelog

import (
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// Level is the severity of a log entry.
type Level int8

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Tag returns the fixed-width bracketed label written before each message.
func (l Level) Tag() string {
	switch l {
	case DebugLevel:
		return "[DEBUG] "
	case InfoLevel:
		return "[INFO ] "
	case WarnLevel:
		return "[WARN ] "
	case ErrorLevel:
		return "[ERROR] "
	}
	return "[?????] "
}

// Color returns the ANSI escape sequence used for the level tag on the console.
func (l Level) Color() string {
	switch l {
	case DebugLevel:
		return "\033[34m"
	case InfoLevel:
		return "\033[32m"
	case WarnLevel:
		return "\033[33m"
	case ErrorLevel:
		return "\033[31m"
	}
	return emptyString
}

// coloredTag wraps the tag in the level color when colored is true.
func (l Level) coloredTag(colored bool) string {
	if !colored {
		return l.Tag()
	}
	return l.Color() + l.Tag() + ansiReset
}

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	}
	return "unknown"
}

// ParseLevel converts a level name into a Level. Names are matched
// case-insensitively; "warning" and "err" are accepted as aliases.
func ParseLevel(name string) (Level, error) {
	const op errors.Op = "queuelog.ParseLevel"
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "warning":
		return WarnLevel, nil
	case "err":
		return ErrorLevel, nil
	}

	zl, err := zerolog.ParseLevel(name)
	if err != nil {
		return InfoLevel, errors.New(op).Err(err).Msg(errMsgUnknownLevel)
	}
	switch zl {
	case zerolog.DebugLevel:
		return DebugLevel, nil
	case zerolog.InfoLevel:
		return InfoLevel, nil
	case zerolog.WarnLevel:
		return WarnLevel, nil
	case zerolog.ErrorLevel:
		return ErrorLevel, nil
	default:
		return InfoLevel, errors.New(op).Msg(errMsgUnknownLevel)
	}
}
