package assetresolve

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigError marks a load-time configuration failure: no manager
// configured, a missing capability, or unusable manager metadata.  Hosts
// treat these as "disable the plugin", never as transient.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// Configf creates a ConfigError with a formatted reason.
func Configf(format string, args ...interface{}) error {
	return ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// IsConfig reports whether err is a configuration error, looking through
// any wrapping.
func IsConfig(err error) bool {
	_, ok := errors.Cause(err).(ConfigError)
	return ok
}
