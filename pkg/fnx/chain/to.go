package chain

import "github.com/ib-77/fnx/pkg/fnx/result"

// To chains a step that may change the value type.
func To[T, U any](c Chain[T], onSuccess func(T) result.Result[U]) Chain[U] {
	return Chain[U]{res: result.SelectMany(c.res, onSuccess)}
}

func ToTry[T, U any](c Chain[T], tryOnSuccess func(T) (U, error)) Chain[U] {
	return Chain[U]{res: result.Try(c.res, tryOnSuccess)}
}

func ToMap[T, U any](c Chain[T], onSuccess func(T) U) Chain[U] {
	return Chain[U]{res: result.Select(c.res, onSuccess)}
}

// Finally collapses the chain into a value of another type.
func Finally[T, U any](c Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	if c.res.IsSuccess() {
		return onSuccess(c.res.Result())
	}
	return onFailure(c.res.Err())
}
