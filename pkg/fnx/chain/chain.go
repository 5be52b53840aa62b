package chain

import (
	"github.com/ib-77/fnx/pkg/fnx/failure"
	"github.com/ib-77/fnx/pkg/fnx/result"
)

// Chain wraps a result.Result to enable fluent chaining
type Chain[T any] struct {
	res result.Result[T]
}

func Start[T any](r result.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(result.Success(v))
}

func (c Chain[T]) Result() result.Result[T] {
	return c.res
}

// Then composes functions that already return result.Result[T]
func (c Chain[T]) Then(onSuccess func(t T) result.Result[T]) Chain[T] {
	return To(c, onSuccess)
}

// ThenTry composes functions that return (T, error), like repository calls
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	return ToTry(c, try)
}

// Map transforms the successful value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return ToMap(c, onSuccess)
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(*failure.Info)) Chain[T] {
	c.res.DoOnSuccess(onSuccess).DoOnFailure(onFailure)
	return c
}

func (c Chain[T]) Rescue(alternate func(*failure.Info) result.Result[T]) Chain[T] {
	return Chain[T]{res: c.res.Rescue(alternate)}
}

// Or returns the first successful chain, or the first failure when none
// succeeded.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failure, or the last chain when all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// RepeatUntil runs onSuccess at least once and keeps going while until
// holds for the new value.
func (c Chain[T]) RepeatUntil(onSuccess func(t T) result.Result[T], until func(t T) bool) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	for {
		c = c.Then(onSuccess)
		if c.res.IsFailure() || !until(c.res.Result()) {
			return c
		}
	}
}

// While runs onSuccess as long as while holds for the current value.
func (c Chain[T]) While(onSuccess func(t T) result.Result[T], while func(t T) bool) Chain[T] {
	for c.res.IsSuccess() && while(c.res.Result()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(onSuccess func(T) T, onFailure func(*failure.Info) T) T {
	return result.Finally(c.res, onSuccess, onFailure)
}
