// Package option implements Option[T], a value that is either present (Some)
// or absent (None), and the combinators that work on it.
//
// Highlights:
// - Some/None/FromNullable/FromPtr/FromOk: construct an Option
// - HasValue/Get/Value/ReturnValueOr: inspect or extract
// - Match/MatchSome/MatchNone/Case: case analysis with side effects or a value
// - Map/Bind/Where/WhereNot: transform and filter, panics propagate
// - TryMap/TryBind: same, but an error or panic in the callback yields None
//
// The zero Option is None.
package option
