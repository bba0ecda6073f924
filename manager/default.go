package manager

import (
	"fmt"

	"github.com/dcckit/assetresolve"
	"github.com/pkg/errors"
)

// ErrNoManager indicates that no asset manager is configured.  This is
// not a failure of the lookup itself; callers decide whether running
// without a manager is acceptable.
var ErrNoManager = fmt.Errorf("no asset manager is configured")

// Default looks up and instantiates the configured asset manager.
//
// The identifier comes from ASSETRESOLVE_PLUGIN, or failing that from the
// document named by ASSETRESOLVE_CONFIG, which may also carry settings.
// With neither present, Default returns ErrNoManager.
func Default(host HostIdentity, log assetresolve.Logger) (assetresolve.Manager, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	return Lookup(cfg, host, log)
}

// Lookup instantiates the manager selected by an explicit Config.  Most
// callers want Default; Lookup exists for callers that assemble their
// configuration some other way (e.g. command-line flags).
func Lookup(cfg Config, host HostIdentity, log assetresolve.Logger) (assetresolve.Manager, error) {
	identifier := cfg.Plugin
	var settings map[string]interface{}

	if cfg.ConfigPath != "" {
		fc, err := readConfigFile(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}

		if identifier == "" {
			identifier = fc.Identifier
		}
		settings = fc.Settings
	}

	if identifier == "" {
		return nil, ErrNoManager
	}

	mgr, err := instantiate(identifier, host, settings, log)
	if err != nil {
		return nil, errors.Wrapf(err, "could not instantiate manager %s", identifier)
	}

	log.Log(assetresolve.SeverityDebug,
		fmt.Sprintf("%s is using manager %s", host.DisplayName, mgr.DisplayName()))

	return mgr, nil
}
