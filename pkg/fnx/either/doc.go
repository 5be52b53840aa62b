// Package either provides Either[L, R], a value that holds exactly one of two
// alternatives. There is no empty Either: the zero value is Left with L's
// zero value.
package either
