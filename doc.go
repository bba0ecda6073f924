// Package assetresolve defines the contracts for bridging a host
// application's URI file-resolution hooks to an external asset manager.
//
// The host routes resolution requests by URI scheme to a Resolver, which
// delegates the actual entity-to-path resolution to a Manager.  Manager
// implementations live under managers/ and are looked up through the
// manager package.  See plugin/ for the load/unload glue that binds a
// Resolver into a host's registry.
package assetresolve
