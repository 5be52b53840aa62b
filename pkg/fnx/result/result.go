package result

import (
	"github.com/ib-77/fnx/pkg/fnx/either"
	"github.com/ib-77/fnx/pkg/fnx/failure"
	"github.com/ib-77/fnx/pkg/fnx/option"
)

type Result[S any] struct {
	either.Either[S, *failure.Info]
}

func Success[S any](value S) Result[S] {
	return Result[S]{either.Left[S, *failure.Info](value)}
}

// Failure wraps info. A nil info is replaced so that a Failure always carries
// a payload.
func Failure[S any](info *failure.Info) Result[S] {
	if info == nil {
		info = failure.New("unknown failure")
	}
	return Result[S]{either.Right[S](info)}
}

func Fail[S any](message string) Result[S] {
	return Failure[S](failure.New(message))
}

func FailWith[S any](message string, context map[string]any) Result[S] {
	return Failure[S](failure.NewWithContext(message, context))
}

func FailWrap[S any](message string, cause error, context map[string]any) Result[S] {
	return Failure[S](failure.Wrap(message, cause, context))
}

func FromValue[S any](value S) Result[S] {
	return Success(value)
}

func FromFailure[S any](info *failure.Info) Result[S] {
	return Failure[S](info)
}

// FromTuple converts the usual (value, error) pair.
func FromTuple[S any](value S, err error) Result[S] {
	if err != nil {
		return Failure[S](failure.FromError(err))
	}
	return Success(value)
}

// FromOption turns None into the failure built by onNone.
func FromOption[S any](o option.Option[S], onNone func() *failure.Info) Result[S] {
	if v, ok := o.Get(); ok {
		return Success(v)
	}
	return Failure[S](onNone())
}

func (r Result[S]) IsSuccess() bool {
	return r.IsLeft()
}

func (r Result[S]) IsFailure() bool {
	return r.IsRight()
}

// Result returns the success value, or S's zero value on failure.
func (r Result[S]) Result() S {
	v, _ := r.LeftValue()
	return v
}

// FailureInfo returns the failure payload, nil on success.
func (r Result[S]) FailureInfo() *failure.Info {
	info, _ := r.RightValue()
	return info
}

// Err is FailureInfo as an error; it is a plain nil on success.
func (r Result[S]) Err() error {
	if info := r.FailureInfo(); info != nil {
		return info
	}
	return nil
}

func (r Result[S]) ToOption() option.Option[S] {
	v, ok := r.LeftValue()
	return option.FromOk(v, ok)
}

func (r Result[S]) DoOnSuccess(action func(S)) Result[S] {
	r.MatchLeft(action)
	return r
}

func (r Result[S]) DoOnFailure(action func(*failure.Info)) Result[S] {
	r.MatchRight(action)
	return r
}

// Rescue leaves a success untouched and hands a failure to alternate.
func (r Result[S]) Rescue(alternate func(*failure.Info) Result[S]) Result[S] {
	if r.IsSuccess() {
		return r
	}
	return alternate(r.FailureInfo())
}

func (r Result[S]) Equal(other Result[S]) bool {
	return r.Either.Equal(other.Either)
}

// IsTrue is true only for Success(true).
func IsTrue(r Result[bool]) bool {
	return r.IsSuccess() && r.Result()
}

// IsFalse is true only for Success(false). A failure is neither true nor
// false.
func IsFalse(r Result[bool]) bool {
	return r.IsSuccess() && !r.Result()
}
