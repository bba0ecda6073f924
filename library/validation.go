package library

import "fmt"

// Validate verifies whether a library document is internally consistent.
// A positive result (no error returned) means only that the document is
// plausible.  It does not imply that the files it points to actually
// exist; that is for whoever resolves against it to discover.
//
// Internally consistent means:
//
// Every asset has at least one version.
//
// Every asset names a head version, and that version is among its versions.
//
// No version maps to an empty path.
func (l *Library) Validate() error {
	for name, asset := range l.Assets {
		if len(asset.Versions) == 0 {
			return fmt.Errorf("asset %s has no versions", name)
		}

		if asset.Head == "" {
			return fmt.Errorf("asset %s does not name a head version", name)
		}

		if _, ok := asset.Versions[asset.Head]; !ok {
			return fmt.Errorf("asset %s head %s is not among its versions", name, asset.Head)
		}

		for v, path := range asset.Versions {
			if path == "" {
				return fmt.Errorf("asset %s version %s has an empty path", name, v)
			}
		}
	}

	return nil
}
