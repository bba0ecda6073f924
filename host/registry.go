package host

import (
	"fmt"

	"github.com/dcckit/assetresolve"
	"github.com/dcckit/assetresolve/internal/uri"
	"github.com/pkg/errors"
)

type registration struct {
	className string
	scheme    string
	resolver  assetresolve.Resolver
}

// Registry is an in-process Host.  It keeps a dispatch table from URI
// scheme to resolver instance and routes resolution requests through it.
//
// The registry performs no locking: like a real host, it promises its
// resolvers sequential, non-reentrant invocation, and expects the same of
// its own callers.
type Registry struct {
	Messenger

	byClass  map[string]*registration
	byScheme map[string]*registration
}

// NewRegistry creates a Registry that displays user messages through m.
func NewRegistry(m Messenger) *Registry {
	return &Registry{
		Messenger: m,
		byClass:   map[string]*registration{},
		byScheme:  map[string]*registration{},
	}
}

// RegisterURIFileResolver instantiates a resolver via f and installs it in
// the dispatch table under scheme.  A class name or scheme that is already
// taken is an error, and leaves the table untouched.
func (r *Registry) RegisterURIFileResolver(className, scheme string, f Factory) error {
	if className == "" || scheme == "" {
		return fmt.Errorf("resolver class name and scheme must not be empty")
	}

	if _, taken := r.byClass[className]; taken {
		return fmt.Errorf("a resolver named %s is already registered", className)
	}
	if prev, taken := r.byScheme[scheme]; taken {
		return fmt.Errorf("scheme %s is already handled by %s", scheme, prev.className)
	}

	resolver, err := f()
	if err != nil {
		return errors.Wrapf(err, "could not construct resolver %s", className)
	}

	reg := &registration{
		className: className,
		scheme:    scheme,
		resolver:  resolver,
	}
	r.byClass[className] = reg
	r.byScheme[scheme] = reg

	return nil
}

// DeregisterURIFileResolver removes the resolver registered under
// className, dropping its scheme from the dispatch table.
func (r *Registry) DeregisterURIFileResolver(className string) error {
	reg, ok := r.byClass[className]
	if !ok {
		return fmt.Errorf("no resolver named %s is registered", className)
	}

	delete(r.byClass, className)
	delete(r.byScheme, reg.scheme)

	return nil
}

// Resolve routes a URI to the resolver handling its scheme.  Resolver
// errors propagate to the caller unmodified.
func (r *Registry) Resolve(u string, mode assetresolve.Mode, owner string) (string, error) {
	scheme, err := uri.Scheme(u)
	if err != nil {
		return "", err
	}

	reg, ok := r.byScheme[scheme]
	if !ok {
		return "", fmt.Errorf("no resolver registered for scheme %s", scheme)
	}

	return reg.resolver.Resolve(u, mode, owner)
}

// AfterSave notifies the resolver handling the URI's scheme that a save
// occurred at the resolved location.  A URI nobody handles is ignored.
func (r *Registry) AfterSave(u string, resolved string) {
	scheme, err := uri.Scheme(u)
	if err != nil {
		return
	}

	if reg, ok := r.byScheme[scheme]; ok {
		reg.resolver.AfterSave(u, resolved)
	}
}

// Schemes lists the schemes currently present in the dispatch table.
func (r *Registry) Schemes() []string {
	var schemes []string
	for s := range r.byScheme {
		schemes = append(schemes, s)
	}
	return schemes
}
