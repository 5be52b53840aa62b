package either

// Case is the total, value producing match.
func Case[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Fold is Case under the name pipelines usually look for.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	return Case(e, onLeft, onRight)
}

func MapLeft[L, R, U any](e Either[L, R], f func(L) U) Either[U, R] {
	if e.isRight {
		return Right[U, R](e.right)
	}
	return Left[U, R](f(e.left))
}

func MapRight[L, R, U any](e Either[L, R], f func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L, U](f(e.right))
	}
	return Left[L, U](e.left)
}
