// Package state holds one container per screen. Each container embeds a
// store.Store over an immutable snapshot type and adds one method per user
// event. Derived facts such as form errors are methods on the snapshot and
// are recomputed on every read.
package state
