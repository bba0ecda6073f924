package assetresolve

// Severity is a log level reported by a manager.
type Severity int

// Log severities, ordered least to most severe.
const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityProgress
	SeverityWarning
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityProgress:
		return "progress"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	}
	return "info"
}

// Logger receives log messages from a manager.  Hosts supply an
// implementation that forwards messages to their own UI channels; see
// host.MessageLogger.
type Logger interface {
	Log(s Severity, msg string)
}

// LoggerFunc is a function that can be used to satisfy the Logger interface
type LoggerFunc func(s Severity, msg string)

// Log a message at the given severity
func (f LoggerFunc) Log(s Severity, msg string) {
	f(s, msg)
}
