package option

import (
	"encoding/json"
	"errors"

	"github.com/ib-77/fnx/pkg/fnx"
)

// NoneHash is the hash of every None, and of Some holding a nil value.
const NoneHash = fnx.NilHash

// ErrInvalidState is matched by the panic value raised when Value is called
// on None.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError signals a programmer error: reading the value of None.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNullable adopts a possibly nil value: nil becomes None.
func FromNullable[T any](value T) Option[T] {
	if fnx.IsNil(value) {
		return None[T]()
	}
	return Some(value)
}

// FromNullableIf is FromNullable that also requires predicate to hold.
func FromNullableIf[T any](value T, predicate func(T) bool) Option[T] {
	return FromNullable(value).Where(predicate)
}

func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromOk mirrors the comma-ok idiom.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) HasValue() bool {
	return o.ok
}

func (o Option[T]) HasNoValue() bool {
	return !o.ok
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Value returns the contained value and panics with *InvalidStateError on
// None.
func (o Option[T]) Value() T {
	if !o.ok {
		panic(&InvalidStateError{Message: "A None Option has no value!"})
	}
	return o.value
}

func (o Option[T]) ReturnValueOr(defaultValue T) T {
	if o.ok {
		return o.value
	}
	return defaultValue
}

// ReturnValueOrElse calls supplier only when o is None.
func (o Option[T]) ReturnValueOrElse(supplier func() T) T {
	if o.ok {
		return o.value
	}
	return supplier()
}

func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

func (o Option[T]) OrElseFunc(supplier func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return supplier()
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) Equal(other Option[T]) bool {
	if o.ok != other.ok {
		return false
	}
	return !o.ok || fnx.Equal(o.value, other.value)
}

func (o Option[T]) Hash() uint64 {
	if !o.ok {
		return NoneHash
	}
	return fnx.Hash(o.value)
}

// String is "" for None and for Some(nil).
func (o Option[T]) String() string {
	if !o.ok {
		return ""
	}
	return fnx.Stringify(o.value)
}

// MarshalJSON encodes None as null. Some(nil) is also written as null, so
// it reads back as None: JSON has a single absent value and the variant is
// not kept.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
