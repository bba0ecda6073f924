package host

import (
	"github.com/dcckit/assetresolve"
)

// Factory creates a resolver instance.  The host calls it once per
// registration; the host owns the returned instance until deregistration.
type Factory func() (assetresolve.Resolver, error)

// Messenger is the host's user-facing message surface.  Each call displays
// a single line; severity is conveyed only by the channel chosen.
type Messenger interface {
	DisplayError(msg string)
	DisplayWarning(msg string)
	DisplayInfo(msg string)
}

// Host is the resolver extension point of a host application.
type Host interface {
	Messenger

	// RegisterURIFileResolver registers a resolver factory under the given
	// class name and URI scheme.  Registration is transactional: on error,
	// no resolver state is retained.
	RegisterURIFileResolver(className, scheme string, f Factory) error

	// DeregisterURIFileResolver removes a previously registered resolver.
	DeregisterURIFileResolver(className string) error
}
