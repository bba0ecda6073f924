package main

import (
	"fmt"
	"os"

	"github.com/dcckit/assetresolve"
	"github.com/dcckit/assetresolve/host"
	"github.com/dcckit/assetresolve/plugin"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

var resolveOpts = struct {
	mode  string
	owner string
}{}

var resolve cli.Command = cli.Command{
	Name:  "resolve",
	Usage: "Resolve asset URIs to file paths",
	Description: `Loads the resolver plugin against an in-process host and resolves
	the given URIs through the configured asset manager, printing one
	"uri<TAB>path" line per argument.

	The resolution mode mirrors the host's intent flag: "none" wants the
	path as fast as possible, "input" implies the result will be read,
	"output" that it will be written.  The mode is advisory; whether it
	triggers existence checks is up to the manager.

	For example, with the bal manager configured:

	  assetresolve resolve bal:///pony bal:///castle?v=v1
	`,
	ArgsUsage: "uri ...",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "mode, m",
			Usage:       "Resolution intent {none, input, output}",
			Value:       "none",
			Destination: &resolveOpts.mode,
		},
		cli.StringFlag{
			Name:        "owner",
			Usage:       "Name of the scene element requesting resolution",
			Destination: &resolveOpts.owner,
		},
	},

	Action: func(c *cli.Context) error {
		return resolveAction(c.Args())
	},
}

func resolveAction(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no URIs given")
	}

	applyOptsToEnv()

	registry := host.NewRegistry(host.WriterMessenger{Out: os.Stderr})
	if err := plugin.Initialize(registry); err != nil {
		return errors.Wrapf(err, "could not load resolver plugin")
	}
	defer func() {
		_ = plugin.Uninitialize(registry)
	}()

	mode := assetresolve.ParseMode(resolveOpts.mode)
	paths := make([]string, len(args))

	var g errgroup.Group
	for i, uri := range args {
		i, uri := i, uri
		g.Go(func() error {
			path, err := registry.Resolve(uri, mode, resolveOpts.owner)
			if err != nil {
				return errors.Wrapf(err, "could not resolve %s", uri)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, uri := range args {
		fmt.Printf("%s\t%s\n", uri, paths[i])
	}
	return nil
}
