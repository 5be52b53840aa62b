// Package fnx holds the pieces shared by every container in the library:
// the Unit placeholder and the value helpers (IsNil, Equal, Hash) that give
// Option, Either and Result one consistent notion of absence, equality and
// hashing.
//
// The containers themselves live in sub-packages:
// - option: presence/absence of a value (Some/None)
// - either: a value that is exactly one of two alternatives (Left/Right)
// - failure: structured failure payload (message, cause, context)
// - result: success or failure, built on either
// - chain: fluent comprehension over result
// - seq: bridges between iter.Seq and option
package fnx
