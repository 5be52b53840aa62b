// Package result implements Result[S], the outcome of a computation that
// either succeeded with a value of type S or failed with a *failure.Info.
//
// Result is an either.Either[S, *failure.Info]: Success is Left, Failure is
// Right. A Result never changes state; every combinator returns a new one.
//
// Key operations:
// - Success/Failure/Fail/FailWith/FailWrap: construct a Result
// - FromTuple/FromOption/FromValue/FromFailure: lift Go values into a Result
// - Select/SelectMany/SelectManyProject/Try: chain steps; a panic or an error
//   inside a step becomes a Failure
// - Rescue: the only way back from Failure to Success
// - Validate/FailOnError/Finally/LogFailure: railway helpers
//
// Unlike option.Map, the chaining functions here always recover panics:
// failure is data in a Result.
package result
