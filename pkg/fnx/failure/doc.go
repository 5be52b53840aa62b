// Package failure defines Info, the structured payload carried by a failed
// result: a message, an optional cause and a string keyed context.
//
// An Info is immutable once built. The context map handed to a constructor is
// cloned, and Context returns a clone, so callers that keep a reference to
// their own map cannot change a failure after the fact.
//
// Info implements error (Error/Unwrap), json.Marshaler, json.Unmarshaler and
// zapcore.ObjectMarshaler, so it can travel through errors.Is/As, be
// serialized and be logged as structured fields.
package failure
