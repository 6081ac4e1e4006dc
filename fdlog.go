package fdlog

import (
	"os"
	"runtime"
	"strings"
)

// Level defines the ordered severity of a log record. Records below the
// active threshold are suppressed.
type Level int8

const (
	// TraceLevel defines trace log level.
	TraceLevel Level = iota
	// DebugLevel defines debug log level.
	DebugLevel
	// InfoLevel defines info log level.
	InfoLevel
	// WarnLevel defines warn log level.
	WarnLevel
	// ErrorLevel defines error log level.
	ErrorLevel
	// FatalLevel defines fatal log level. Fatal is a label and a durability
	// hint (the record is fsynced), not a termination action.
	FatalLevel
)

// LevelString returns the display name of a Level as it appears in the
// record's [LEVEL] tag.
func LevelString(level Level) string {
	switch level {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "?"
	}
}

// ParseLevel converts a textual level into a Level value. It accepts values
// such as "trace", "debug", "info", "warn", "warning", "error" and "fatal",
// case insensitive.
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	case "fatal":
		return FatalLevel, true
	default:
		return InfoLevel, false
	}
}

// LevelFromEnv looks up key in the environment and parses it into a Level.
func LevelFromEnv(key string) (Level, bool) {
	if key == "" {
		return InfoLevel, false
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return InfoLevel, false
	}
	return ParseLevel(value)
}

// SetLevelFromEnv sets the active threshold from the value of key in the
// environment. Missing or invalid values leave the threshold unchanged; the
// return value reports whether it was applied.
func SetLevelFromEnv(key string) bool {
	level, ok := LevelFromEnv(key)
	if ok {
		SetLevel(level)
	}
	return ok
}

// Trace logs a formatted record at TraceLevel.
func Trace(format string, args ...any) { logCall(TraceLevel, "", format, args) }

// Debug logs a formatted record at DebugLevel.
func Debug(format string, args ...any) { logCall(DebugLevel, "", format, args) }

// Info logs a formatted record at InfoLevel.
func Info(format string, args ...any) { logCall(InfoLevel, "", format, args) }

// Warn logs a formatted record at WarnLevel.
func Warn(format string, args ...any) { logCall(WarnLevel, "", format, args) }

// Error logs a formatted record at ErrorLevel.
func Error(format string, args ...any) { logCall(ErrorLevel, "", format, args) }

// Fatal logs a formatted record at FatalLevel and forces it to stable storage
// before returning. It does not terminate the process; that decision belongs
// to the caller.
func Fatal(format string, args ...any) { logCall(FatalLevel, "", format, args) }

// TraceGroup logs a record at TraceLevel tagged with group.
func TraceGroup(group, format string, args ...any) { logCall(TraceLevel, group, format, args) }

// DebugGroup logs a record at DebugLevel tagged with group.
func DebugGroup(group, format string, args ...any) { logCall(DebugLevel, group, format, args) }

// InfoGroup logs a record at InfoLevel tagged with group.
func InfoGroup(group, format string, args ...any) { logCall(InfoLevel, group, format, args) }

// WarnGroup logs a record at WarnLevel tagged with group.
func WarnGroup(group, format string, args ...any) { logCall(WarnLevel, group, format, args) }

// ErrorGroup logs a record at ErrorLevel tagged with group.
func ErrorGroup(group, format string, args ...any) { logCall(ErrorLevel, group, format, args) }

// FatalGroup logs a record at FatalLevel tagged with group, fsynced like
// Fatal.
func FatalGroup(group, format string, args ...any) { logCall(FatalLevel, group, format, args) }

// Log emits a formatted record at the supplied level.
func Log(level Level, format string, args ...any) { logCall(level, "", format, args) }

// LogGroup emits a formatted record at the supplied level tagged with group.
func LogGroup(level Level, group, format string, args ...any) {
	logCall(level, group, format, args)
}

// Output emits a record on behalf of a wrapper. calldepth counts stack frames
// above Output: 1 reports Output's caller, 2 the caller's caller, and so on.
func Output(calldepth int, level Level, group, format string, args ...any) {
	if level < GetLevel() {
		return
	}
	file, line := caller(calldepth + 1)
	emit(level, file, line, group, format, args)
}

// Banner emits a readiness record so startup is visible in the stream.
func Banner() { logCall(InfoLevel, "fdlog", "logger ready", nil) }

func logCall(level Level, group, format string, args []any) {
	if level < GetLevel() {
		return
	}
	file, line := caller(3)
	emit(level, file, line, group, format, args)
}

// caller resolves the emitting call site. skip counts frames above this
// function itself.
func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", 0
	}
	return file, line
}
