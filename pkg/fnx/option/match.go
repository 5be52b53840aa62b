package option

func (o Option[T]) Match(onSome func(T), onNone func()) Option[T] {
	if o.ok {
		if onSome != nil {
			onSome(o.value)
		}
	} else if onNone != nil {
		onNone()
	}
	return o
}

func (o Option[T]) MatchSome(onSome func(T)) Option[T] {
	return o.Match(onSome, nil)
}

func (o Option[T]) MatchNone(onNone func()) Option[T] {
	return o.Match(nil, onNone)
}

// Case is the value producing match: exactly one of the callbacks runs and
// its result is returned.
func Case[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}
