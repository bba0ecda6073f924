// Package library contains facilities for working with asset library
// documents.  A library is a 1:1 reflection of a library.json file: asset
// names mapped to versioned relative paths, with a head version per asset.
//
// The bal manager resolves entity references against a Library; the scan
// facility builds one from an asset tree on disk.
package library
