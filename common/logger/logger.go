package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

var (
	nullWriter   = &NullWriter{}
	currentLevel = ERROR
	Info         *log.Logger
	Warn         *log.Logger
	Error        *log.Logger
	Debug        *log.Logger
	Trace        *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

type NullWriter struct {
	io.Writer
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func init() {
	initializeWriters(ERROR, nullWriter, nullWriter)
}

func Initialize(logLevel LogLevel) {
	log.Printf("Initialize loggers: '%s'", logLevel.String())
	initializeWriters(logLevel, os.Stderr, os.Stdout)
}

// IsLogLevel tells if messages of the given level are written
// anywhere. Use it to skip formatting of costly trace output.
func IsLogLevel(logLevel LogLevel) bool {
	return logLevel <= currentLevel
}

func initializeWriters(logLevel LogLevel, errorOut io.Writer, out io.Writer) {
	currentLevel = logLevel

	writerFor := func(level LogLevel, writer io.Writer) io.Writer {
		if logLevel >= level {
			return writer
		}
		return nullWriter
	}

	Error = log.New(writerFor(ERROR, errorOut), "ERROR: ", logFlags)
	Warn = log.New(writerFor(WARN, out), "WARN:  ", logFlags)
	Info = log.New(writerFor(INFO, out), "INFO:  ", logFlags)
	Debug = log.New(writerFor(DEBUG, out), "DEBUG: ", logFlags)
	Trace = log.New(writerFor(TRACE, out), "TRACE: ", logFlags)
}
