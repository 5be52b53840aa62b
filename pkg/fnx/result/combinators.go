package result

import (
	"fmt"

	"github.com/ib-77/fnx/pkg/fnx/failure"
	"go.uber.org/zap"
)

// Select maps the success value.
func Select[S, U any](r Result[S], f func(S) U) (out Result[U]) {
	if r.IsFailure() {
		return Failure[U](r.FailureInfo())
	}
	defer recoverInto(&out)
	return Success(f(r.Result()))
}

// SelectMany feeds the success value to the next fallible step.
func SelectMany[S, U any](r Result[S], f func(S) Result[U]) (out Result[U]) {
	if r.IsFailure() {
		return Failure[U](r.FailureInfo())
	}
	defer recoverInto(&out)
	return f(r.Result())
}

// SelectManyProject is SelectMany followed by a projection that sees both
// the input and the intermediate value.
func SelectManyProject[S, U, V any](r Result[S], f func(S) Result[U], project func(S, U) V) (out Result[V]) {
	if r.IsFailure() {
		return Failure[V](r.FailureInfo())
	}
	defer recoverInto(&out)

	s := r.Result()
	u := f(s)
	if u.IsFailure() {
		return Failure[V](u.FailureInfo())
	}
	return Success(project(s, u.Result()))
}

// Try runs a (value, error) step; a non-nil error becomes the failure.
func Try[S, U any](r Result[S], f func(S) (U, error)) (out Result[U]) {
	if r.IsFailure() {
		return Failure[U](r.FailureInfo())
	}
	defer recoverInto(&out)
	u, err := f(r.Result())
	return FromTuple(u, err)
}

func Validate[S any](r Result[S], validate func(in S) (valid bool, errMsg string)) Result[S] {
	if r.IsFailure() {
		return r
	}
	if valid, errMsg := validate(r.Result()); !valid {
		return Fail[S](errMsg)
	}
	return r
}

func FailOnError[S any](r Result[S], maybeErr func(in S) error) Result[S] {
	if r.IsFailure() {
		return r
	}
	if err := maybeErr(r.Result()); err != nil {
		return Failure[S](failure.FromError(err))
	}
	return r
}

// Finally collapses the Result into a plain value.
func Finally[S, U any](r Result[S], onSuccess func(S) U, onFailure func(*failure.Info) U) U {
	if r.IsSuccess() {
		return onSuccess(r.Result())
	}
	return onFailure(r.FailureInfo())
}

// LogFailure writes a failure to logger at error level and returns r.
func LogFailure[S any](r Result[S], logger *zap.Logger, msg string) Result[S] {
	if r.IsFailure() && logger != nil {
		logger.Error(msg, zap.Object("failure", r.FailureInfo()))
	}
	return r
}

func recoverInto[U any](out *Result[U]) {
	if rec := recover(); rec != nil {
		*out = Failure[U](fromPanic(rec))
	}
}

func fromPanic(rec any) *failure.Info {
	switch v := rec.(type) {
	case *failure.Info:
		return v
	case error:
		return failure.FromError(v)
	default:
		return failure.New(fmt.Sprint(v))
	}
}
