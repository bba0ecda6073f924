package manager

import (
	"fmt"
	"sort"

	"github.com/dcckit/assetresolve"
)

// HostIdentity describes the host application to a manager, so the
// manager can vary its behavior (or just its log messages) per host.
type HostIdentity struct {
	Identifier  string
	DisplayName string
}

// InstantiateFunc creates a manager instance from its settings.  The
// logger is the channel back to the host's UI; managers should assume
// nothing else about where their messages end up.
type InstantiateFunc func(host HostIdentity, settings map[string]interface{}, log assetresolve.Logger) (assetresolve.Manager, error)

// Simple compile-time registry of manager implementations, keyed by
// reverse-DNS identifier.
var implementations = map[string]InstantiateFunc{}

// Register makes a manager implementation available for lookup by
// identifier.  Implementations call this from init().
func Register(identifier string, f InstantiateFunc) {
	implementations[identifier] = f
}

// Implementations lists the identifiers of all registered manager
// implementations, sorted.
func Implementations() []string {
	var ids []string
	for id := range implementations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func instantiate(identifier string, host HostIdentity, settings map[string]interface{}, log assetresolve.Logger) (assetresolve.Manager, error) {
	f, ok := implementations[identifier]
	if !ok {
		return nil, fmt.Errorf("no manager implementation registered as %s (have %v)", identifier, Implementations())
	}

	return f(host, settings, log)
}
