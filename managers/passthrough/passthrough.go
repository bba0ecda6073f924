// Package passthrough implements the placeholder manager: every entity
// reference resolves to its own path component, unchanged.  It exists so
// the resolver bridge can be exercised (and hosts integrated) before a
// real asset manager is in the picture.
package passthrough

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dcckit/assetresolve"
	"github.com/dcckit/assetresolve/manager"
)

// Identifier is the reverse-DNS identifier this manager registers under
const Identifier = "org.dcckit.passthrough"

const defaultPrefix = "file://"

func init() {
	manager.Register(Identifier, New)
}

// Manager resolves references by stripping its prefix and returning the
// remainder as the path.
type Manager struct {
	prefix string
}

type resolutionContext struct{}

// New creates a passthrough manager.  The optional "prefix" setting
// overrides the file:// default.
func New(host manager.HostIdentity, settings map[string]interface{}, log assetresolve.Logger) (assetresolve.Manager, error) {
	prefix := defaultPrefix
	if settings != nil {
		if p, ok := settings["prefix"].(string); ok && p != "" {
			prefix = p
		}
	}

	if !strings.Contains(prefix, "://") {
		return nil, fmt.Errorf("passthrough prefix %s is not protocol-shaped", prefix)
	}

	return &Manager{prefix: prefix}, nil
}

// Identifier returns the manager's reverse-DNS identifier
func (m *Manager) Identifier() string {
	return Identifier
}

// DisplayName returns the manager's human-presentable name
func (m *Manager) DisplayName() string {
	return "Passthrough"
}

// Info advertises the entity reference prefix this manager matches.
func (m *Manager) Info() map[string]interface{} {
	return map[string]interface{}{
		assetresolve.InfoKeyReferencePrefix: m.prefix,
	}
}

// HasCapability reports the capabilities of this manager.
func (m *Manager) HasCapability(c assetresolve.Capability) bool {
	return c == assetresolve.CapResolution
}

// CreateContext returns an empty context; passthrough resolution is
// entirely stateless.
func (m *Manager) CreateContext() assetresolve.Context {
	return &resolutionContext{}
}

// Resolve returns the reference's path component as the resolved path.
func (m *Manager) Resolve(ref string, cxt assetresolve.Context) (string, error) {
	if !strings.HasPrefix(ref, m.prefix) {
		return "", fmt.Errorf("%s is not a %s entity reference", ref, m.prefix)
	}

	return filepath.FromSlash(strings.TrimPrefix(ref, m.prefix)), nil
}
