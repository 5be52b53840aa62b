// Package chain provides a fluent wrapper around result.Result[T] for
// writing multi-step fallible computations as a flat comprehension.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or a value
// - Then/ThenTry/Map: same-type steps as methods
// - To/ToTry/ToMap: type-changing steps as functions
// - Ensure: side effects without changing the result
// - Rescue/Or/And: recovery and combination
// - RepeatUntil/While: loop a step while the chain stays successful
// - Finally: collapse the chain into a plain value
//
// Every step is skipped once the chain has failed, and a panic inside a
// step turns into a failure, as in result.SelectMany.
package chain
