// Package uri holds the small amount of URI surgery this module performs
// itself: picking the scheme out of a URI for dispatch, and deriving a
// scheme from a manager-reported reference prefix.  Everything beyond the
// scheme is opaque here and belongs to the manager.
package uri

import (
	"fmt"
	"strings"
)

const delimiter = "://"

// Scheme returns the scheme token of a URI, i.e. everything before "://".
func Scheme(uri string) (string, error) {
	i := strings.Index(uri, delimiter)
	if i < 1 {
		return "", fmt.Errorf("no URI scheme present in %s", uri)
	}
	return uri[:i], nil
}

// SchemeFromPrefix derives a URI scheme from an entity-reference prefix.
// A protocol-shaped prefix such as "foo://" yields "foo"; a bare token
// such as "bar" is used as the scheme unchanged.
func SchemeFromPrefix(prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("entity reference prefix is empty")
	}

	if i := strings.Index(prefix, delimiter); i > 0 {
		return prefix[:i], nil
	}

	if strings.Contains(prefix, ":") || strings.Contains(prefix, "/") {
		return "", fmt.Errorf("entity reference prefix %s is not scheme-shaped", prefix)
	}

	return prefix, nil
}
