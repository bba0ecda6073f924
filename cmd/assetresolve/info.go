package main

import (
	"fmt"
	"os"

	"github.com/dcckit/assetresolve"
	"github.com/dcckit/assetresolve/host"
	"github.com/dcckit/assetresolve/internal/uri"
	"github.com/dcckit/assetresolve/manager"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var info cli.Command = cli.Command{
	Name:  "info",
	Usage: "Show the configured asset manager and the scheme it would claim",
	Description: `Looks up the configured asset manager and prints its identity,
	capabilities, advertised entity reference prefix, and the URI scheme
	the resolver would register under.

	With no manager configured, lists the available implementations.
	`,
	Action: func(c *cli.Context) error {
		return infoAction()
	},
}

func infoAction() error {
	mgr, err := newManager(host.WriterMessenger{Out: os.Stderr})
	if errors.Cause(err) == manager.ErrNoManager {
		fmt.Println("No asset manager is configured.")
		fmt.Printf("Available implementations: %v\n", manager.Implementations())
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Manager:     %s (%s)\n", mgr.DisplayName(), mgr.Identifier())

	for _, c := range []assetresolve.Capability{
		assetresolve.CapResolution,
		assetresolve.CapPublishing,
		assetresolve.CapStatefulContexts,
	} {
		fmt.Printf("  %-18s %v\n", c, mgr.HasCapability(c))
	}

	prefix, _ := mgr.Info()[assetresolve.InfoKeyReferencePrefix].(string)
	if prefix == "" {
		fmt.Println("Prefix:      (none reported; the resolver would refuse to load)")
		return nil
	}

	fmt.Printf("Prefix:      %s\n", prefix)

	scheme, err := uri.SchemeFromPrefix(prefix)
	if err != nil {
		fmt.Printf("Scheme:      unusable (%s)\n", err)
		return nil
	}
	fmt.Printf("Scheme:      %s\n", scheme)

	return nil
}
