// Package host defines the extension point a host application exposes to
// URI file resolvers: registration of a resolver factory under a scheme,
// deregistration by class name, and single-line display channels for user
// messages.
//
// Registry is an in-process implementation of that extension point,
// suitable for hosts embedding this module directly and for tests.  A real
// host owns the whole lifecycle: it constructs resolvers through the
// registered factory, drives every resolve call, and guarantees the calls
// are sequential and non-reentrant.
package host
