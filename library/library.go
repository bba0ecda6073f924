package library

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// LibraryFile is the conventional name of an asset library document
const LibraryFile = "library.json"

// Library is the contents of an asset library document: a mapping of
// asset names to their versioned physical locations.
type Library struct {
	Assets map[string]Asset `json:"assets"`
}

// Asset records the known versions of a single asset.  Paths are relative
// to whatever root the library is anchored at.
type Asset struct {
	Head     string            `json:"head"`
	Versions map[string]string `json:"versions"`
}

// Parse parses a byte stream into an asset library
func Parse(r io.Reader, l *Library) error {
	err := json.NewDecoder(r).Decode(l)
	if err != nil {
		return errors.Wrap(err, "could not decode json library")
	}
	return nil
}

// Serialize writes the contents of the library to json
func (l *Library) Serialize(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

// Resolve returns the relative path of the named asset at the given
// version.  An empty version selects the asset's head version.
func (l *Library) Resolve(name, version string) (string, error) {
	asset, ok := l.Assets[name]
	if !ok {
		return "", fmt.Errorf("no asset named %s in library", name)
	}

	if version == "" {
		version = asset.Head
	}

	path, ok := asset.Versions[version]
	if !ok {
		return "", fmt.Errorf("asset %s has no version %s", name, version)
	}

	return path, nil
}
