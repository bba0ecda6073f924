package main

import (
	"log"
	"os"

	"github.com/dcckit/assetresolve"
	"github.com/dcckit/assetresolve/host"
	"github.com/dcckit/assetresolve/manager"
	"github.com/urfave/cli"

	// Manager implementations register themselves on import
	_ "github.com/dcckit/assetresolve/managers/bal"
	_ "github.com/dcckit/assetresolve/managers/passthrough"
)

var mainOpts = struct {
	plugin string
	config string
}{}

func main() {
	app := cli.NewApp()
	app.Name = "assetresolve"
	app.Usage = "URI asset resolver utilities"
	app.EnableBashCompletion = true
	app.Commands = []cli.Command{
		info,
		resolve,
		scan,
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "plugin, p",
			Usage:       "Manager implementation identifier",
			EnvVar:      "ASSETRESOLVE_PLUGIN",
			Destination: &mainOpts.plugin,
		},
		cli.StringFlag{
			Name:        "config, c",
			Usage:       "Manager configuration document (json)",
			EnvVar:      "ASSETRESOLVE_CONFIG",
			Destination: &mainOpts.config,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

var cliIdentity = manager.HostIdentity{
	Identifier:  "org.dcckit.assetresolve.cli",
	DisplayName: "assetresolve CLI",
}

func newManager(m host.Messenger) (assetresolve.Manager, error) {
	cfg := manager.Config{
		Plugin:     mainOpts.plugin,
		ConfigPath: mainOpts.config,
	}

	return manager.Lookup(cfg, cliIdentity, host.MessageLogger{Messenger: m})
}

// The plugin glue reads its configuration from the environment; reflect
// any explicitly given flags back into it before loading.
func applyOptsToEnv() {
	if mainOpts.plugin != "" {
		os.Setenv("ASSETRESOLVE_PLUGIN", mainOpts.plugin)
	}
	if mainOpts.config != "" {
		os.Setenv("ASSETRESOLVE_CONFIG", mainOpts.config)
	}
}
