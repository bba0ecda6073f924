package host_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/dcckit/assetresolve"
	"github.com/dcckit/assetresolve/host"
	"github.com/go-test/deep"
	"github.com/pkg/errors"
)

type stubResolver struct {
	scheme     string
	resolved   string
	err        error
	saves      []string
	resolveLog []string
}

func (r *stubResolver) URIScheme() string {
	return r.scheme
}

func (r *stubResolver) Resolve(uri string, mode assetresolve.Mode, owner string) (string, error) {
	r.resolveLog = append(r.resolveLog, uri)
	return r.resolved, r.err
}

func (r *stubResolver) AfterSave(uri, resolved string) {
	r.saves = append(r.saves, uri+" "+resolved)
}

func factoryFor(r assetresolve.Resolver) host.Factory {
	return func() (assetresolve.Resolver, error) {
		return r, nil
	}
}

func newRegistry() *host.Registry {
	return host.NewRegistry(host.WriterMessenger{Out: &bytes.Buffer{}})
}

func TestRegisterAndResolve(t *testing.T) {
	r := newRegistry()
	stub := &stubResolver{scheme: "bal", resolved: "/assets/pony/v2/pony.ma"}

	if err := r.RegisterURIFileResolver("AssetResolver", "bal", factoryFor(stub)); err != nil {
		t.Fatalf("registration failed: %s", err)
	}

	path, err := r.Resolve("bal:///pony", assetresolve.ModeInput, "sceneNode1")
	if err != nil {
		t.Fatalf("resolve failed: %s", err)
	}
	if path != stub.resolved {
		t.Errorf("got path %s, expected %s", path, stub.resolved)
	}
}

func TestResolveUnknownScheme(t *testing.T) {
	r := newRegistry()

	if _, err := r.Resolve("bal:///pony", assetresolve.ModeNone, ""); err == nil {
		t.Errorf("Expected an error resolving with no registered resolver")
	}
}

func TestResolverErrorsPropagate(t *testing.T) {
	r := newRegistry()
	boom := fmt.Errorf("manager exploded")
	stub := &stubResolver{scheme: "bal", err: boom}

	_ = r.RegisterURIFileResolver("AssetResolver", "bal", factoryFor(stub))

	_, err := r.Resolve("bal:///pony", assetresolve.ModeNone, "")
	if errors.Cause(err) != boom {
		t.Errorf("Resolver error should propagate untouched, got %v", err)
	}
}

func TestDuplicateRegistrationIsTransactional(t *testing.T) {
	r := newRegistry()
	first := &stubResolver{scheme: "bal", resolved: "/first"}
	second := &stubResolver{scheme: "bal", resolved: "/second"}

	if err := r.RegisterURIFileResolver("AssetResolver", "bal", factoryFor(first)); err != nil {
		t.Fatalf("registration failed: %s", err)
	}

	if err := r.RegisterURIFileResolver("OtherResolver", "bal", factoryFor(second)); err == nil {
		t.Errorf("Expected an error registering a second resolver for the same scheme")
	}
	if err := r.RegisterURIFileResolver("AssetResolver", "other", factoryFor(second)); err == nil {
		t.Errorf("Expected an error re-registering the same class name")
	}

	// The original registration must still win
	path, err := r.Resolve("bal:///pony", assetresolve.ModeNone, "")
	if err != nil || path != "/first" {
		t.Errorf("Original registration was disturbed: path=%s err=%v", path, err)
	}

	diffs := deep.Equal([]string{"bal"}, r.Schemes())
	if len(diffs) != 0 {
		t.Errorf("Unexpected schemes after failed registrations: %s", diffs)
	}
}

func TestFailingFactoryLeavesNoState(t *testing.T) {
	r := newRegistry()

	err := r.RegisterURIFileResolver("AssetResolver", "bal", func() (assetresolve.Resolver, error) {
		return nil, fmt.Errorf("no manager today")
	})
	if err == nil {
		t.Fatalf("Expected registration to fail when the factory fails")
	}

	if len(r.Schemes()) != 0 {
		t.Errorf("Failed registration left schemes behind: %v", r.Schemes())
	}
	if err := r.DeregisterURIFileResolver("AssetResolver"); err == nil {
		t.Errorf("Nothing should have been registered under the class name")
	}
}

func TestDeregister(t *testing.T) {
	r := newRegistry()
	stub := &stubResolver{scheme: "bal"}

	_ = r.RegisterURIFileResolver("AssetResolver", "bal", factoryFor(stub))

	if err := r.DeregisterURIFileResolver("AssetResolver"); err != nil {
		t.Fatalf("deregistration failed: %s", err)
	}
	if _, err := r.Resolve("bal:///pony", assetresolve.ModeNone, ""); err == nil {
		t.Errorf("Scheme should no longer be routed after deregistration")
	}
	if err := r.DeregisterURIFileResolver("AssetResolver"); err == nil {
		t.Errorf("Expected an error deregistering twice")
	}
}

func TestAfterSaveRouting(t *testing.T) {
	r := newRegistry()
	stub := &stubResolver{scheme: "bal"}

	_ = r.RegisterURIFileResolver("AssetResolver", "bal", factoryFor(stub))

	r.AfterSave("bal:///pony", "/assets/pony/v2/pony.ma")
	r.AfterSave("other:///thing", "/elsewhere") // nobody handles this; ignored

	diffs := deep.Equal([]string{"bal:///pony /assets/pony/v2/pony.ma"}, stub.saves)
	if len(diffs) != 0 {
		t.Errorf("Unexpected save notifications: %s", diffs)
	}
}

func TestMessageLoggerDispatch(t *testing.T) {
	cases := []struct {
		severity assetresolve.Severity
		prefix   string
	}{
		{assetresolve.SeverityDebug, ""},
		{assetresolve.SeverityInfo, ""},
		{assetresolve.SeverityProgress, ""},
		{assetresolve.SeverityWarning, "Warning: "},
		{assetresolve.SeverityError, "Error: "},
		{assetresolve.SeverityCritical, "Error: "},
	}

	for _, c := range cases {
		c := c
		t.Run(c.severity.String(), func(t *testing.T) {
			var buf bytes.Buffer
			l := host.MessageLogger{Messenger: host.WriterMessenger{Out: &buf}}

			l.Log(c.severity, "hello")

			expected := c.prefix + "hello\n"
			if buf.String() != expected {
				t.Errorf("got %q, expected %q", buf.String(), expected)
			}
		})
	}
}

func TestWriterMessengerSingleLine(t *testing.T) {
	var buf bytes.Buffer
	m := host.WriterMessenger{Out: &buf}

	m.DisplayError("e")
	m.DisplayWarning("w")
	m.DisplayInfo("i")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("Each display call should emit exactly one line, got %q", buf.String())
	}
}
