// Package seq bridges sequences and options: first/last/single element
// lookups that answer with an Option instead of panicking, and projections
// that flatten sequences of Options back into plain values.
//
// Lazy helpers take and return iter.Seq and pull only what they need; the
// slice helpers are eager. A nil sequence behaves as an empty one.
package seq
