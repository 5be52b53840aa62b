package fnx

import (
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// NilHash is the hash of an absent value.
const NilHash uint64 = 0x2545f4914f6cdd1d

// IsNil reports whether i is nil or a nil pointer, map, slice, channel,
// function or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// Equal compares two values of the same type. A type with an Equal(T) bool
// method decides for itself, comparable values use ==, everything else goes
// through reflect.DeepEqual. Two nil values are equal; nil is never equal to
// a non-nil value. Floats follow == except that NaN equals NaN.
func Equal[T any](a, b T) bool {
	aNil, bNil := IsNil(a), IsNil(b)
	if aNil || bNil {
		return aNil && bNil
	}

	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() == vb.Type() {
		switch va.Kind() {
		case reflect.Float32, reflect.Float64:
			return floatEqual(va.Float(), vb.Float())
		case reflect.Complex64, reflect.Complex128:
			ca, cb := va.Complex(), vb.Complex()
			return floatEqual(real(ca), real(cb)) && floatEqual(imag(ca), imag(cb))
		}
	}
	if va.Comparable() && vb.Comparable() {
		return any(a) == any(b)
	}
	return reflect.DeepEqual(a, b)
}

// Hash returns a hash consistent with Equal: values that are Equal hash the
// same. Types with a Hash() uint64 method are trusted; types with their own
// Equal and values that are not comparable only hash their type.
func Hash[T any](v T) uint64 {
	if IsNil(v) {
		return NilHash
	}

	switch h := any(v).(type) {
	case interface{ Hash() uint64 }:
		return h.Hash()
	case interface{ Equal(T) bool }:
		return xxhash.Sum64String(fmt.Sprintf("%T", v))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return xxhash.Sum64String(fmt.Sprintf("%T:%v", v, canonicalFloat(rv.Float())))
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return xxhash.Sum64String(fmt.Sprintf("%T:%v:%v", v,
			canonicalFloat(real(c)), canonicalFloat(imag(c))))
	}
	if rv.Comparable() {
		return xxhash.Sum64String(fmt.Sprintf("%T:%#v", v, v))
	}
	return xxhash.Sum64String(fmt.Sprintf("%T", v))
}

func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// canonicalFloat folds -0 into +0 and every NaN into one NaN.
func canonicalFloat(f float64) float64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return math.NaN()
	}
	return f
}

// Stringify renders v with fmt, or "" when v is nil.
func Stringify[T any](v T) string {
	if IsNil(v) {
		return ""
	}
	return fmt.Sprint(v)
}
