package either

import (
	"github.com/ib-77/fnx/pkg/fnx"
)

const leftSeed, rightSeed uint64 = 0x9e3779b97f4a7c15, 0xc2b2ae3d27d4eb4f

type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) LeftValue() (L, bool) {
	return e.left, !e.isRight
}

func (e Either[L, R]) RightValue() (R, bool) {
	return e.right, e.isRight
}

// Match runs exactly one callback, chosen by the variant. Nil callbacks are
// skipped.
func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) Either[L, R] {
	if e.isRight {
		if onRight != nil {
			onRight(e.right)
		}
	} else if onLeft != nil {
		onLeft(e.left)
	}
	return e
}

func (e Either[L, R]) MatchLeft(onLeft func(L)) Either[L, R] {
	return e.Match(onLeft, nil)
}

func (e Either[L, R]) MatchRight(onRight func(R)) Either[L, R] {
	return e.Match(nil, onRight)
}

func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

func (e Either[L, R]) Equal(other Either[L, R]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return fnx.Equal(e.right, other.right)
	}
	return fnx.Equal(e.left, other.left)
}

// EqualPtr extends Equal to pointers: two nil pointers are equal, a nil
// pointer never equals a populated Either.
func EqualPtr[L, R any](a, b *Either[L, R]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func (e Either[L, R]) Hash() uint64 {
	if e.isRight {
		return rightSeed ^ fnx.Hash(e.right)
	}
	return leftSeed ^ fnx.Hash(e.left)
}

// String is the contained value's string form, "" for nil.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fnx.Stringify(e.right)
	}
	return fnx.Stringify(e.left)
}
