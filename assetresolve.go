package assetresolve

import "strings"

// Mode expresses the host's intent for a resolved path.  It is carried
// through to the resolver for context, but any existence checking implied
// by a mode is policy belonging to the manager and the host, not to the
// resolver itself.
type Mode int

// Resolution modes, in increasing order of demands on the resolved path.
const (
	// ModeNone asks for the resolved path as quickly as possible.  The
	// host will not check the result for existence.
	ModeNone Mode = iota

	// ModeInput indicates the resolved path will be read.  The host checks
	// the result for existence after the call returns.
	ModeInput

	// ModeOutput indicates the resolved path will be written.  The path
	// must exist or be creatable.
	ModeOutput
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeInput:
		return "input"
	case ModeOutput:
		return "output"
	}
	return "none"
}

// ParseMode maps a mode name to a Mode, defaulting to ModeNone for
// anything unrecognized.
func ParseMode(name string) Mode {
	switch strings.ToLower(name) {
	case "input":
		return ModeInput
	case "output":
		return ModeOutput
	}
	return ModeNone
}

// Capability names a feature flag a manager may or may not support.
type Capability string

// Capabilities relevant to file resolution.
const (
	CapResolution       Capability = "resolution"
	CapPublishing       Capability = "publishing"
	CapStatefulContexts Capability = "statefulContexts"
)

// InfoKeyReferencePrefix is the well-known Info() key whose value is the
// prefix matching entity references the manager is able to resolve, e.g.
// "bal:///".  The URI scheme a resolver registers under is derived from it.
const InfoKeyReferencePrefix = "entityReferencesMatchPrefix"

// Context is an opaque resolution context created by a Manager.  A resolver
// obtains one at construction and hands it back on every Resolve call; its
// contents mean nothing to anyone but the manager that created it.
type Context interface{}

// Manager is the external asset-management service responsible for actual
// entity-to-path resolution.  Instances are owned by whoever looked them
// up; resolvers only borrow a reference.
type Manager interface {

	// Identifier returns the manager's reverse-DNS identifier.
	Identifier() string

	// DisplayName returns a human-presentable name for UI messages.
	DisplayName() string

	// Info returns manager metadata.  See the InfoKey constants for
	// well-known entries.
	Info() map[string]interface{}

	// HasCapability reports whether the manager supports the named
	// capability.
	HasCapability(c Capability) bool

	// CreateContext returns a fresh resolution context.
	CreateContext() Context

	// Resolve maps an entity reference to a fully-qualified path.  A nil
	// error does not imply the path exists.
	Resolve(ref string, cxt Context) (string, error)
}

// Resolver is the host-facing half of the bridge: the host routes URIs
// whose scheme matches URIScheme() to Resolve.
type Resolver interface {

	// URIScheme returns the URI scheme this resolver handles.  The value
	// is fixed for the life of the resolver.
	URIScheme() string

	// Resolve converts a URI into a path the host can access.  The owner
	// argument names the host-side element that triggered the request,
	// and may be empty.
	Resolve(uri string, mode Mode, owner string) (string, error)

	// AfterSave notifies the resolver that the host saved a file under
	// uri, at the physical location resolved.
	AfterSave(uri string, resolved string)
}
