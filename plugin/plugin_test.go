package plugin_test

import (
	"strings"
	"testing"

	"github.com/dcckit/assetresolve"
	"github.com/dcckit/assetresolve/host"
	"github.com/dcckit/assetresolve/manager"
	"github.com/dcckit/assetresolve/plugin"
	"github.com/go-test/deep"
)

type recordingMessenger struct {
	errs     []string
	warnings []string
	infos    []string
}

func (m *recordingMessenger) DisplayError(msg string)   { m.errs = append(m.errs, msg) }
func (m *recordingMessenger) DisplayWarning(msg string) { m.warnings = append(m.warnings, msg) }
func (m *recordingMessenger) DisplayInfo(msg string)    { m.infos = append(m.infos, msg) }

type fakeManager struct {
	displayName string
	prefix      interface{} // value under the prefix info key; nil omits it
	resolvable  bool
	resolved    string
}

func (m *fakeManager) Identifier() string  { return "org.example.fake" }
func (m *fakeManager) DisplayName() string { return m.displayName }

func (m *fakeManager) Info() map[string]interface{} {
	info := map[string]interface{}{}
	if m.prefix != nil {
		info[assetresolve.InfoKeyReferencePrefix] = m.prefix
	}
	return info
}

func (m *fakeManager) HasCapability(c assetresolve.Capability) bool {
	return m.resolvable && c == assetresolve.CapResolution
}

func (m *fakeManager) CreateContext() assetresolve.Context {
	return struct{}{}
}

func (m *fakeManager) Resolve(ref string, cxt assetresolve.Context) (string, error) {
	return m.resolved, nil
}

// installs mgr as the configured default manager for the test's duration
func configure(t *testing.T, identifier string, mgr assetresolve.Manager) {
	t.Helper()

	manager.Register(identifier, func(manager.HostIdentity, map[string]interface{}, assetresolve.Logger) (assetresolve.Manager, error) {
		return mgr, nil
	})
	t.Setenv("ASSETRESOLVE_PLUGIN", identifier)
	t.Setenv("ASSETRESOLVE_CONFIG", "")
}

func TestInitializeRegistersDerivedScheme(t *testing.T) {
	cases := []struct {
		name   string
		prefix string
		scheme string
	}{
		{"protocol shaped prefix", "foo://", "foo"},
		{"bare token prefix", "bar", "bar"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			configure(t, "org.example.scheme."+c.scheme, &fakeManager{
				displayName: "Fake Manager",
				prefix:      c.prefix,
				resolvable:  true,
				resolved:    "/resolved/path",
			})

			rec := &recordingMessenger{}
			r := host.NewRegistry(rec)

			if err := plugin.Initialize(r); err != nil {
				t.Fatalf("initialization failed: %s", err)
			}

			diffs := deep.Equal([]string{c.scheme}, r.Schemes())
			if len(diffs) != 0 {
				t.Errorf("Unexpected schemes registered: %s", diffs)
			}

			path, err := r.Resolve(c.scheme+"://anything", assetresolve.ModeInput, "node1")
			if err != nil || path != "/resolved/path" {
				t.Errorf("Resolution through the registered adapter failed: path=%s err=%v", path, err)
			}
		})
	}
}

func TestInitializeNoManager(t *testing.T) {
	t.Setenv("ASSETRESOLVE_PLUGIN", "")
	t.Setenv("ASSETRESOLVE_CONFIG", "")

	rec := &recordingMessenger{}
	r := host.NewRegistry(rec)

	err := plugin.Initialize(r)
	if err == nil {
		t.Fatalf("Expected initialization to fail with no manager configured")
	}
	if !assetresolve.IsConfig(err) {
		t.Errorf("Expected a configuration error, got %v", err)
	}
	if len(r.Schemes()) != 0 {
		t.Errorf("No resolver should be registered after a failed load")
	}
	assertDisplayedError(t, rec, plugin.ClassName)
}

func TestInitializeNoResolutionCapability(t *testing.T) {
	configure(t, "org.example.nocap", &fakeManager{
		displayName: "Publish Only Manager",
		prefix:      "foo://",
		resolvable:  false,
	})

	rec := &recordingMessenger{}
	r := host.NewRegistry(rec)

	err := plugin.Initialize(r)
	if !assetresolve.IsConfig(err) {
		t.Fatalf("Expected a configuration error, got %v", err)
	}
	if len(r.Schemes()) != 0 {
		t.Errorf("No resolver should be registered after a failed load")
	}

	// The user needs to know which manager fell short
	assertDisplayedError(t, rec, "Publish Only Manager")
}

func TestInitializeUnusablePrefix(t *testing.T) {
	cases := []struct {
		name   string
		prefix interface{}
	}{
		{"missing key", nil},
		{"empty prefix", ""},
		{"non-string prefix", 42},
		{"malformed prefix", "a/b:c"},
	}

	for i, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			configure(t, "org.example.prefix"+strings.Repeat("x", i), &fakeManager{
				displayName: "Fake Manager",
				prefix:      c.prefix,
				resolvable:  true,
			})

			rec := &recordingMessenger{}
			r := host.NewRegistry(rec)

			err := plugin.Initialize(r)
			if !assetresolve.IsConfig(err) {
				t.Fatalf("Expected a configuration error, got %v", err)
			}
			if len(r.Schemes()) != 0 {
				t.Errorf("No resolver should be registered after a failed load")
			}
		})
	}
}

func TestUninitialize(t *testing.T) {
	configure(t, "org.example.unload", &fakeManager{
		displayName: "Fake Manager",
		prefix:      "foo://",
		resolvable:  true,
	})

	rec := &recordingMessenger{}
	r := host.NewRegistry(rec)

	if err := plugin.Initialize(r); err != nil {
		t.Fatalf("initialization failed: %s", err)
	}

	if err := plugin.Uninitialize(r); err != nil {
		t.Fatalf("unload failed: %s", err)
	}
	if len(r.Schemes()) != 0 {
		t.Errorf("Scheme should be unrouted after unload")
	}

	// A second unload fails, loudly but non-fatally
	err := plugin.Uninitialize(r)
	if err == nil {
		t.Errorf("Expected an error deregistering twice")
	}
	assertDisplayedError(t, rec, plugin.ClassName)
}

func assertDisplayedError(t *testing.T, rec *recordingMessenger, substring string) {
	t.Helper()

	for _, msg := range rec.errs {
		if strings.Contains(msg, substring) {
			return
		}
	}
	t.Errorf("No displayed error mentions %q: %v", substring, rec.errs)
}
