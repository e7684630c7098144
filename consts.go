package queuelog

const (
	emptyString = ""

	// timestampLayout renders local time as YYYY-MM-DD HH:MM:SS.
	timestampLayout = "2006-01-02 15:04:05"

	ansiReset = "\033[0m"
)

const (
	errMsgNilConfig     = "Logging config is nil."
	errMsgNilService    = "Logger service is nil."
	errMsgConfigInvalid = "Logging configuration is invalid."
	errMsgConfigRead    = "Logging configuration file could not be read."
	errMsgConfigParse   = "Logging configuration file could not be parsed."
	errMsgUnknownLevel  = "Unknown log level."
)
