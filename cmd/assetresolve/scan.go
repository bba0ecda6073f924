package main

import (
	"fmt"
	"path/filepath"

	"github.com/dcckit/assetresolve/library"
	"github.com/dcckit/assetresolve/managers/bal"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var scanOpts = struct {
	output string
}{}

var scan cli.Command = cli.Command{
	Name:  "scan",
	Usage: "Build an asset library document from an asset tree",
	Description: `Walks an asset tree and writes a library.json describing the assets
	found.  Each top-level directory is an asset, each v1..vN child
	directory a version; the highest version becomes the head.

	The document is written atomically, next to the tree unless -o says
	otherwise.  The bal manager resolves against such documents.
	`,
	ArgsUsage: "dir",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "output, o",
			Usage:       "Where to write the library document",
			Destination: &scanOpts.output,
		},
	},

	Action: func(c *cli.Context) error {
		return scanAction(c.Args())
	},
}

func scanAction(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("scan takes exactly one directory argument")
	}
	root := args[0]

	lib, err := bal.Scan(root)
	if err != nil {
		return errors.Wrapf(err, "could not scan %s", root)
	}

	if err := lib.Validate(); err != nil {
		return errors.Wrapf(err, "scan of %s produced an unusable library", root)
	}

	out := scanOpts.output
	if out == "" {
		out = filepath.Join(root, library.LibraryFile)
	}

	if err := bal.WriteLibrary(out, lib); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d assets)\n", out, len(lib.Assets))
	return nil
}
