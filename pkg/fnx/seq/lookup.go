package seq

import (
	"iter"

	"github.com/ib-77/fnx/pkg/fnx/option"
)

func FirstOrNone[T any](s iter.Seq[T]) option.Option[T] {
	return FirstOrNoneWhere(s, anything[T])
}

// FirstOrNoneWhere stops pulling from s at the first match.
func FirstOrNoneWhere[T any](s iter.Seq[T], predicate func(T) bool) option.Option[T] {
	if s == nil {
		return option.None[T]()
	}
	for v := range s {
		if predicate(v) {
			return option.Some(v)
		}
	}
	return option.None[T]()
}

func LastOrNone[T any](s iter.Seq[T]) option.Option[T] {
	return LastOrNoneWhere(s, anything[T])
}

// LastOrNoneWhere has to drain s.
func LastOrNoneWhere[T any](s iter.Seq[T], predicate func(T) bool) option.Option[T] {
	last := option.None[T]()
	if s == nil {
		return last
	}
	for v := range s {
		if predicate(v) {
			last = option.Some(v)
		}
	}
	return last
}

func SingleOrNone[T any](s iter.Seq[T]) option.Option[T] {
	return SingleOrNoneWhere(s, anything[T])
}

// SingleOrNoneWhere is Some only when exactly one element matches. It stops
// at the second match.
func SingleOrNoneWhere[T any](s iter.Seq[T], predicate func(T) bool) option.Option[T] {
	single := option.None[T]()
	if s == nil {
		return single
	}
	for v := range s {
		if !predicate(v) {
			continue
		}
		if single.HasValue() {
			return option.None[T]()
		}
		single = option.Some(v)
	}
	return single
}

// GetValueOrNone is a map lookup answering with an Option. A nil map is
// fine.
func GetValueOrNone[M ~map[K]V, K comparable, V any](m M, key K) option.Option[V] {
	v, ok := m[key]
	return option.FromOk(v, ok)
}

func anything[T any](T) bool {
	return true
}
