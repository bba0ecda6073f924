package host

import (
	"fmt"
	"io"

	"github.com/dcckit/assetresolve"
)

// WriterMessenger displays messages as single lines on an io.Writer.  It
// stands in for a host's UI channels in the CLI and in tests.
type WriterMessenger struct {
	Out io.Writer
}

// DisplayError displays an error line
func (m WriterMessenger) DisplayError(msg string) {
	fmt.Fprintf(m.Out, "Error: %s\n", msg)
}

// DisplayWarning displays a warning line
func (m WriterMessenger) DisplayWarning(msg string) {
	fmt.Fprintf(m.Out, "Warning: %s\n", msg)
}

// DisplayInfo displays an informational line
func (m WriterMessenger) DisplayInfo(msg string) {
	fmt.Fprintln(m.Out, msg)
}

// MessageLogger adapts a Messenger into the manager-side Logger contract.
// The mapping from severity to display channel is fixed: errors and
// critical messages go to the error channel, warnings to the warning
// channel, and everything else to the info channel.
type MessageLogger struct {
	Messenger Messenger
}

// Log displays a manager log message on the appropriate host channel.
func (l MessageLogger) Log(s assetresolve.Severity, msg string) {
	switch s {
	case assetresolve.SeverityError, assetresolve.SeverityCritical:
		l.Messenger.DisplayError(msg)
	case assetresolve.SeverityWarning:
		l.Messenger.DisplayWarning(msg)
	default:
		l.Messenger.DisplayInfo(msg)
	}
}
