package bal

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dcckit/assetresolve"
	"github.com/dcckit/assetresolve/idpath"
	"github.com/dcckit/assetresolve/library"
	"github.com/dcckit/assetresolve/manager"
	"github.com/pkg/errors"
)

// Identifier is the reverse-DNS identifier this manager registers under
const Identifier = "org.dcckit.bal"

// Prefix matches the entity references this manager can resolve
const Prefix = "bal:///"

func init() {
	manager.Register(Identifier, New)
}

// Manager is the basic-asset-library manager: it resolves bal:/// entity
// references against a library document anchored at an asset tree root.
type Manager struct {
	root     string
	lib      *library.Library
	fallback idpath.Generator
	log      assetresolve.Logger
}

// A resolution context pins the library state present when the context
// was created, so a resolver sees stable answers even if the manager
// reloads its library underneath it.
type resolutionContext struct {
	lib *library.Library
}

// New creates a bal manager from its settings.
//
// "library_path" names a library document to resolve against.  If the
// document does not exist but "root" names a directory, the library is
// built by scanning the asset tree under it; paths resolve relative to
// the library's directory, or to "root" when given.
func New(host manager.HostIdentity, settings map[string]interface{}, log assetresolve.Logger) (assetresolve.Manager, error) {
	libPath := optString(settings, "library_path")
	root := optString(settings, "root")
	scannable := root != ""

	if libPath == "" && root == "" {
		return nil, fmt.Errorf("bal manager requires a library_path or root setting")
	}

	if root == "" {
		root = filepath.Dir(libPath)
	}

	m := &Manager{
		root: root,
		log:  log,
	}

	// With fallback_paths set, references missing from the library map
	// straight to paths under the root, much like a path function
	if optBool(settings, "fallback_paths") {
		m.fallback = idpath.GeneratorFunc(idpath.Flat)
	}

	switch {
	case libPath != "" && exists(libPath):
		lib, err := ReadLibrary(libPath)
		if err != nil {
			return nil, err
		}
		m.lib = lib
	case scannable:
		log.Log(assetresolve.SeverityProgress, fmt.Sprintf("scanning asset tree at %s", root))
		lib, err := Scan(root)
		if err != nil {
			return nil, errors.Wrapf(err, "could not scan asset tree at %s", root)
		}
		m.lib = lib
	default:
		return nil, fmt.Errorf("no library found at %s", libPath)
	}

	if err := m.lib.Validate(); err != nil {
		return nil, errors.Wrap(err, "asset library is not usable")
	}

	return m, nil
}

// Identifier returns the manager's reverse-DNS identifier
func (m *Manager) Identifier() string {
	return Identifier
}

// DisplayName returns the manager's human-presentable name
func (m *Manager) DisplayName() string {
	return "Basic Asset Library"
}

// Info advertises the entity reference prefix this manager matches.
func (m *Manager) Info() map[string]interface{} {
	return map[string]interface{}{
		assetresolve.InfoKeyReferencePrefix: Prefix,
	}
}

// HasCapability reports the capabilities of this manager.  It resolves;
// it does not publish.
func (m *Manager) HasCapability(c assetresolve.Capability) bool {
	return c == assetresolve.CapResolution
}

// CreateContext returns a context pinned to the current library state.
func (m *Manager) CreateContext() assetresolve.Context {
	return &resolutionContext{lib: m.lib}
}

// Resolve maps a bal:///name or bal:///name?v=<version> reference to an
// absolute path within the asset tree.
func (m *Manager) Resolve(ref string, cxt assetresolve.Context) (string, error) {
	rc, ok := cxt.(*resolutionContext)
	if !ok {
		return "", fmt.Errorf("resolution context was not created by this manager")
	}

	if !strings.HasPrefix(ref, Prefix) {
		return "", fmt.Errorf("%s is not a %s entity reference", ref, Prefix)
	}

	name, version, err := splitRef(strings.TrimPrefix(ref, Prefix))
	if err != nil {
		return "", errors.Wrapf(err, "could not parse entity reference %s", ref)
	}

	rel, err := rc.lib.Resolve(name, version)
	if err != nil {
		if m.fallback != nil && version == "" {
			m.log.Log(assetresolve.SeverityDebug, fmt.Sprintf("%s is not in the library; using a flat path", name))
			return filepath.Join(m.root, filepath.FromSlash(m.fallback.Generate(name))), nil
		}
		return "", errors.Wrapf(err, "could not resolve %s", ref)
	}

	return filepath.Join(m.root, filepath.FromSlash(rel)), nil
}

// splitRef separates an entity name from its version query, if any
func splitRef(rest string) (name, version string, err error) {
	name = rest
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		name = rest[:i]

		q, err := url.ParseQuery(rest[i+1:])
		if err != nil {
			return "", "", err
		}
		version = q.Get("v")
	}

	if name == "" {
		return "", "", fmt.Errorf("entity reference names no asset")
	}

	name, err = url.PathUnescape(name)
	return name, version, err
}

// ReadLibrary reads and parses the library document at the given path
func ReadLibrary(path string) (l *library.Library, err error) {
	lib := library.Library{}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open library at %s", path)
	}
	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "error closing library at %s", path)
		}
	}()

	err = library.Parse(file, &lib)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse library at %s", path)
	}

	return &lib, nil
}

func optString(settings map[string]interface{}, key string) string {
	if settings == nil {
		return ""
	}
	if s, ok := settings[key].(string); ok {
		return s
	}
	return ""
}

func optBool(settings map[string]interface{}, key string) bool {
	if settings == nil {
		return false
	}
	if b, ok := settings[key].(bool); ok {
		return b
	}
	return false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
