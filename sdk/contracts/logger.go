package contracts

// LogLevel represents the severity level for logging.
// Values grow with severity so a logger can drop everything below its level.
type LogLevel int

const (
	// DebugLevel is for per-tone traces and other developer detail.
	DebugLevel LogLevel = iota - 1
	// InfoLevel is for lifecycle messages such as backend creation and registration.
	InfoLevel
	// WarnLevel is for degraded paths, like a dummy backend or a failed register write.
	WarnLevel
	// ErrorLevel is for failures a caller should look at.
	ErrorLevel
	// FatalLevel terminates the process after logging.
	FatalLevel
)

// Field is a typed key/value pair attached to a log message.
type Field interface {
	Bool(key string, val bool) Field
	Int(key string, val int) Field
	String(key string, val string) Field
	Strings(key string, val []string) Field
	Error(key string, val error) Field
}

// Logger writes messages at different levels.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	Field() Field

	SetLevel(level LogLevel)
}
