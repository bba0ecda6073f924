// Package plugin binds the resolver adapter into a host's resolver
// registry, once per load/unload cycle.  Initialization looks up the
// configured asset manager, verifies it can resolve, derives the URI
// scheme from the manager's reported reference prefix, and registers an
// adapter factory under that scheme.  Every failure is shown on the
// host's error channel and returned, so the host can abort the load.
package plugin

import (
	"fmt"

	"github.com/dcckit/assetresolve"
	"github.com/dcckit/assetresolve/host"
	"github.com/dcckit/assetresolve/internal/uri"
	"github.com/dcckit/assetresolve/manager"
	"github.com/dcckit/assetresolve/resolver"
	"github.com/pkg/errors"
)

// ClassName is the name the resolver is registered (and deregistered)
// under in the host's registry.
const ClassName = "AssetResolver"

// Identity describes this plugin to the asset manager.
var Identity = manager.HostIdentity{
	Identifier:  "org.dcckit.assetresolve",
	DisplayName: "Asset Resolve",
}

// Initialize registers the resolver adapter with the host.  It fails,
// with a configuration error and a line on the host's error channel,
// when no manager is configured, when the manager cannot resolve, or
// when the manager reports no usable entity reference prefix.
func Initialize(h host.Host) error {
	if err := initialize(h); err != nil {
		h.DisplayError(fmt.Sprintf("Failed to register file resolver '%s': %s", ClassName, err))
		return err
	}
	return nil
}

func initialize(h host.Host) error {
	log := host.MessageLogger{Messenger: h}

	mgr, err := manager.Default(Identity, log)
	if errors.Cause(err) == manager.ErrNoManager {
		return assetresolve.Configf("no asset manager is configured for %s", Identity.DisplayName)
	}
	if err != nil {
		return errors.Wrap(err, "could not obtain the default asset manager")
	}

	if !mgr.HasCapability(assetresolve.CapResolution) {
		return assetresolve.Configf("manager %s does not support resolution", mgr.DisplayName())
	}

	prefix, ok := mgr.Info()[assetresolve.InfoKeyReferencePrefix].(string)
	if !ok || prefix == "" {
		return assetresolve.Configf("manager %s reports no entity reference prefix", mgr.DisplayName())
	}

	scheme, err := uri.SchemeFromPrefix(prefix)
	if err != nil {
		return assetresolve.Configf("manager %s reports an unusable prefix %s: %s", mgr.DisplayName(), prefix, err)
	}

	err = h.RegisterURIFileResolver(ClassName, scheme, func() (assetresolve.Resolver, error) {
		return resolver.New(mgr, scheme)
	})
	return errors.Wrapf(err, "host rejected resolver registration under scheme %s", scheme)
}

// Uninitialize removes the resolver from the host's registry.  Failures
// are shown on the host's error channel and returned; the host decides
// what, if anything, to do about them.
func Uninitialize(h host.Host) error {
	if err := h.DeregisterURIFileResolver(ClassName); err != nil {
		h.DisplayError(fmt.Sprintf("Failed to deregister file resolver '%s': %s", ClassName, err))
		return err
	}
	return nil
}
