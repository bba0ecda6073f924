package resolver

import (
	"fmt"

	"github.com/dcckit/assetresolve"
)

// Adapter relays host resolution requests to a manager.  It is a stateless
// function-call relay: the manager reference, the resolution context, and
// the scheme are all fixed at construction.
type Adapter struct {
	mgr    assetresolve.Manager
	cxt    assetresolve.Context
	scheme string
}

// New creates an Adapter for the given manager, answering for the given
// URI scheme.  The resolution context is obtained from the manager once,
// here, and reused for every subsequent Resolve call.
func New(mgr assetresolve.Manager, scheme string) (*Adapter, error) {
	if mgr == nil {
		return nil, fmt.Errorf("cannot create a resolver without a manager")
	}
	if scheme == "" {
		return nil, fmt.Errorf("cannot create a resolver without a URI scheme")
	}

	return &Adapter{
		mgr:    mgr,
		cxt:    mgr.CreateContext(),
		scheme: scheme,
	}, nil
}

// URIScheme returns the scheme fixed at construction.
func (a *Adapter) URIScheme() string {
	return a.scheme
}

// Resolve converts a URI into a fully-qualified path by delegating to the
// manager.  The mode and owner convey the host's intent; any existence
// checking they imply happens on the manager's side or the host's side,
// never here.  Manager errors propagate unmodified.
func (a *Adapter) Resolve(uri string, mode assetresolve.Mode, owner string) (string, error) {
	return a.mgr.Resolve(uri, a.cxt)
}

// AfterSave is called by the host after a scene file under this adapter's
// scheme is saved.  Forwarding the event to the manager (e.g. for
// provenance) is a future extension; for now the hook intentionally does
// nothing.
func (a *Adapter) AfterSave(uri string, resolved string) {
}
