package core

import (
	"log"
	"os"
	"strings"
	"sync"
)

// VerboseLevel controls how much zp reports on stderr (--v, --vv, --vvv).
// Warnings and fatal errors are always printed.
type VerboseLevel int

const (
	VerboseOff VerboseLevel = iota
	VerboseInfo
	VerboseDebug
	VerboseTrace
)

var (
	loggerOnce   sync.Once
	sharedLogger *Logger
)

// CurrentLogger returns the logger used by every zp command.
// The initial level can be set with $ZENPAD_VERBOSE (off, info, debug, trace).
func CurrentLogger() *Logger {
	loggerOnce.Do(func() {
		sharedLogger = NewLogger()
		if level, ok := ParseVerboseLevel(os.Getenv("ZENPAD_VERBOSE")); ok {
			sharedLogger.SetVerboseLevel(level)
		}
	})
	return sharedLogger
}

// Logger filters messages according to a verbose level and prints them with the log package.
type Logger struct {
	verbose VerboseLevel
}

// NewLogger returns a silent logger.
func NewLogger() *Logger {
	return &Logger{verbose: VerboseOff}
}

// SetVerboseLevel changes the level. Commands call it from the --v flags.
func (l *Logger) SetVerboseLevel(level VerboseLevel) *Logger {
	l.verbose = level
	return l
}

// VerboseLevel returns the current verbose level.
func (l *Logger) VerboseLevel() VerboseLevel {
	return l.verbose
}

func (v VerboseLevel) String() string {
	switch v {
	case VerboseOff:
		return "off"
	case VerboseInfo:
		return "info"
	case VerboseDebug:
		return "debug"
	case VerboseTrace:
		return "trace"
	}
	return "unknown"
}

// ParseVerboseLevel converts a level name (off, info, debug, trace).
func ParseVerboseLevel(name string) (VerboseLevel, bool) {
	for _, level := range []VerboseLevel{VerboseOff, VerboseInfo, VerboseDebug, VerboseTrace} {
		if strings.EqualFold(level.String(), strings.TrimSpace(name)) {
			return level, true
		}
	}
	return VerboseOff, false
}

func (l *Logger) Fatal(v ...any) {
	log.Fatalln(v...)
}
func (l *Logger) Fatalf(format string, v ...any) {
	log.Fatalf(format, v...)
}

func (l *Logger) Warn(v ...any) {
	log.Println(v...)
}
func (l *Logger) Warnf(format string, v ...any) {
	log.Printf(format, v...)
}

func (l *Logger) Info(v ...any) {
	if l.verbose >= VerboseInfo {
		log.Println(v...)
	}
}
func (l *Logger) Infof(format string, v ...any) {
	if l.verbose >= VerboseInfo {
		log.Printf(format, v...)
	}
}

func (l *Logger) Debug(v ...any) {
	if l.verbose >= VerboseDebug {
		log.Println(v...)
	}
}
func (l *Logger) Debugf(format string, v ...any) {
	if l.verbose >= VerboseDebug {
		log.Printf(format, v...)
	}
}

func (l *Logger) Trace(v ...any) {
	if l.verbose >= VerboseTrace {
		log.Println(v...)
	}
}
func (l *Logger) Tracef(format string, v ...any) {
	if l.verbose >= VerboseTrace {
		log.Printf(format, v...)
	}
}
