package option

import "errors"

// errPanicked stands in for a recovered panic inside the Try family.
var errPanicked = errors.New("option: callback panicked")

// Map transforms the value of Some. Panics raised by f reach the caller.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

func Select[T, U any](o Option[T], f func(T) U) Option[U] {
	return Map(o, f)
}

// TryMap is Map for fallible callbacks: an error or a panic becomes None.
func TryMap[T, U any](o Option[T], f func(T) (U, error)) Option[U] {
	if !o.ok {
		return None[U]()
	}
	u, err := protect(o.value, f)
	if err != nil {
		return None[U]()
	}
	return Some(u)
}

func TrySelect[T, U any](o Option[T], f func(T) (U, error)) Option[U] {
	return TryMap(o, f)
}

// Bind flattens an Option-returning step. f is not called on None.
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}

func TryBind[T, U any](o Option[T], f func(T) (Option[U], error)) Option[U] {
	if !o.ok {
		return None[U]()
	}
	u, err := protect(o.value, f)
	if err != nil {
		return None[U]()
	}
	return u
}

// Where keeps Some only if predicate holds.
func (o Option[T]) Where(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) If(predicate func(T) bool) Option[T] {
	return o.Where(predicate)
}

func (o Option[T]) WhereNot(predicate func(T) bool) Option[T] {
	if o.ok && !predicate(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) Unless(predicate func(T) bool) Option[T] {
	return o.WhereNot(predicate)
}

func protect[T, U any](in T, f func(T) (U, error)) (out U, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errPanicked
		}
	}()
	return f(in)
}
