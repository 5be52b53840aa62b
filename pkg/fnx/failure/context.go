package failure

import (
	"github.com/ib-77/fnx/pkg/fnx/option"
	"github.com/mitchellh/mapstructure"
)

// ContextValue looks key up and asserts the stored value to T. A missing key,
// a nil Info or a value of another type all give None.
func ContextValue[T any](info *Info, key string) option.Option[T] {
	if info == nil {
		return option.None[T]()
	}
	raw, ok := info.context[key]
	if !ok {
		return option.None[T]()
	}
	v, ok := raw.(T)
	return option.FromOk(v, ok)
}

// DecodeContextValue is ContextValue with weak typing: the stored value is
// decoded into T, so numbers that came back from JSON as float64 can be read
// as int and nested maps as structs. Undecodable values give None.
func DecodeContextValue[T any](info *Info, key string) option.Option[T] {
	if v := ContextValue[T](info, key); v.HasValue() {
		return v
	}
	if info == nil {
		return option.None[T]()
	}
	raw, ok := info.context[key]
	if !ok || raw == nil {
		return option.None[T]()
	}

	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return option.None[T]()
	}
	if err = decoder.Decode(raw); err != nil {
		return option.None[T]()
	}
	return option.Some(out)
}
