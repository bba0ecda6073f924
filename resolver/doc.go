// Package resolver implements the host-facing resolver adapter.  The
// adapter holds no policy of its own: every resolution request is relayed
// to the manager captured at construction, and the manager's answer (or
// error) is returned to the host as-is.
package resolver
