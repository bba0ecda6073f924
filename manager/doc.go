// Package manager locates and instantiates the asset manager the user has
// configured.  Manager implementations register themselves at init time
// under their reverse-DNS identifier (see managers/), and Default picks
// one based on the ASSETRESOLVE_PLUGIN / ASSETRESOLVE_CONFIG environment.
//
// There being no configured manager is a normal condition, reported as
// ErrNoManager; callers must handle it explicitly before proceeding.
package manager
