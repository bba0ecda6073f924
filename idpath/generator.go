package idpath

import "strings"

// Generator generates a relative, solidus delimited file path from a
// given asset identifier.  The resulting paths are used for mapping asset
// names to directories within an asset tree, possibly with intervening
// directories (e.g. shard or department prefixes).
type Generator interface {
	Generate(string) string
}

// GeneratorFunc is a function that can be used to satisfy the Generator interface
type GeneratorFunc func(string) string

// Generate a path from a given asset id string
func (g GeneratorFunc) Generate(id string) string {
	return g(id)
}

// Flat is a basic Generator mapping asset ids to paths that are identical
// to the input, except with any leading solidus removed.
func Flat(id string) string {
	return strings.TrimLeft(id, "/")
}
