// Package bal implements the basic-asset-library manager: entity
// references of the form bal:///name or bal:///name?v=<version> resolve
// to paths within an asset tree, according to a json library document.
// The library can be read from disk or built by scanning the tree.
package bal
