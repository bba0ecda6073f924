package bal

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dcckit/assetresolve/library"
	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const vfmt = "v%d"

// Scan builds a library by walking an asset tree.  Each top-level
// directory under root is an asset; each child directory named v1..vN is
// a version, whose path is the version's payload file.  The head is the
// highest version present.  Assets are scanned concurrently, one
// goroutine per asset.
func Scan(root string) (*library.Library, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read asset tree root %s", root)
	}

	assets := map[string]library.Asset{}
	var mu sync.Mutex

	var g errgroup.Group
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		name := e.Name()
		dir := filepath.Join(root, name)

		g.Go(func() error {
			asset, err := scanAsset(root, dir)
			if err != nil {
				return errors.Wrapf(err, "error scanning asset at %s", dir)
			}

			// A directory with no version directories isn't an asset
			if len(asset.Versions) == 0 {
				return nil
			}

			mu.Lock()
			assets[name] = asset
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &library.Library{Assets: assets}, nil
}

// Scan the version directories of a single asset
func scanAsset(root, dir string) (library.Asset, error) {
	asset := library.Asset{Versions: map[string]string{}}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return asset, errors.Wrapf(err, "could not read asset directory %s", dir)
	}

	high := -1
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		var n int
		if _, err := fmt.Sscanf(e.Name(), vfmt, &n); err != nil || fmt.Sprintf(vfmt, n) != e.Name() {
			continue
		}

		payload, err := payloadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return asset, err
		}
		if payload == "" {
			continue
		}

		rel, err := filepath.Rel(root, payload)
		if err != nil {
			return asset, errors.Wrapf(err, "could not relativize %s against %s", payload, root)
		}

		asset.Versions[e.Name()] = filepath.ToSlash(rel)
		if n > high {
			high = n
			asset.Head = e.Name()
		}
	}

	return asset, nil
}

// payloadFile picks the version's payload: the lexicographically first
// regular file under the version directory.  Empty if there is none.
func payloadFile(dir string) (string, error) {
	var found string

	err := godirwalk.Walk(dir, &godirwalk.Options{
		FollowSymbolicLinks: true,
		Callback: func(ospath string, de *godirwalk.Dirent) error {
			if de.IsRegular() && (found == "" || ospath < found) {
				found = ospath
			}
			return nil
		},
	})

	return found, errors.Wrapf(err, "error walking version directory %s", dir)
}
