package seq

import (
	"iter"

	"github.com/ib-77/fnx/pkg/fnx"
	"github.com/ib-77/fnx/pkg/fnx/option"
	"github.com/samber/lo"
)

// OptionValues yields the values of the Some elements of s, in order.
func OptionValues[T any](s iter.Seq[option.Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for o := range s {
			if v, ok := o.Get(); ok && !yield(v) {
				return
			}
		}
	}
}

// OptionValuesOr yields one value per element of s, defaultValue standing in
// for None.
func OptionValuesOr[T any](s iter.Seq[option.Option[T]], defaultValue T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for o := range s {
			if !yield(o.ReturnValueOr(defaultValue)) {
				return
			}
		}
	}
}

// SelectNonNull drops nil elements.
func SelectNonNull[T any](s iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for v := range s {
			if !fnx.IsNil(v) && !yield(v) {
				return
			}
		}
	}
}

func SelectNonNullValues[T any](values []T) []T {
	return lo.Filter(values, func(v T, _ int) bool {
		return !fnx.IsNil(v)
	})
}

// SelectValues is the eager OptionValues for slices.
func SelectValues[T any](options []option.Option[T]) []T {
	return lo.FilterMap(options, func(o option.Option[T], _ int) (T, bool) {
		return o.Get()
	})
}

// ValueOrEmpty unwraps an optional sequence, None (or Some(nil)) giving an
// empty one.
func ValueOrEmpty[T any](o option.Option[iter.Seq[T]]) iter.Seq[T] {
	if s, ok := o.Get(); ok && s != nil {
		return s
	}
	return func(func(T) bool) {}
}

// Collect flattens what getter finds under o, dropping None elements.
func Collect[T, U any](o option.Option[T], getter func(T) iter.Seq[option.Option[U]]) iter.Seq[U] {
	return OptionValues(ValueOrEmpty(option.Map(o, getter)))
}

// CollectFrom is Collect for a raw, possibly nil, value.
func CollectFrom[T, U any](value T, getter func(T) iter.Seq[option.Option[U]]) iter.Seq[U] {
	return Collect(option.FromNullable(value), getter)
}

// CollectNonNull is Collect for getters producing plain, possibly nil,
// elements.
func CollectNonNull[T, U any](o option.Option[T], getter func(T) iter.Seq[U]) iter.Seq[U] {
	return SelectNonNull(ValueOrEmpty(option.Map(o, getter)))
}

// CollectSlice is the eager Collect.
func CollectSlice[T, U any](o option.Option[T], getter func(T) []option.Option[U]) []U {
	return SelectValues(option.Map(o, getter).ReturnValueOr(nil))
}
