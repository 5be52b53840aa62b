package failure

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/fnx/pkg/fnx"
	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/yaml"
)

type wireInfo struct {
	ID           uuid.UUID                  `json:"id"`
	CreatedAt    time.Time                  `json:"createdAt"`
	Message      string                     `json:"message"`
	Cause        *Info                      `json:"cause,omitempty"`
	Context      map[string]json.RawMessage `json:"context,omitempty"`
	ContextKinds map[string]string          `json:"contextKinds,omitempty"`
}

// Context values of these types are tagged with their type name on the wire
// and read back as that type. Values of any other type come back the way
// encoding/json decodes them into an any.
var (
	contextKinds    = map[reflect.Type]string{}
	contextDecoders = map[string]func(json.RawMessage) (any, error){}
)

func init() {
	registerContextType[bool]()
	registerContextType[string]()
	registerContextType[int]()
	registerContextType[int8]()
	registerContextType[int16]()
	registerContextType[int32]()
	registerContextType[int64]()
	registerContextType[uint]()
	registerContextType[uint8]()
	registerContextType[uint16]()
	registerContextType[uint32]()
	registerContextType[uint64]()
	registerContextType[float32]()
	registerContextType[float64]()
	registerContextType[time.Time]()
	registerContextType[time.Duration]()
	registerContextType[uuid.UUID]()
}

func registerContextType[T any]() {
	typ := reflect.TypeFor[T]()
	contextKinds[typ] = typ.String()
	contextDecoders[typ.String()] = decodeAs[T]
}

func decodeAs[T any](raw json.RawMessage) (any, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func encodeContext(context map[string]any) (map[string]json.RawMessage, map[string]string, error) {
	if len(context) == 0 {
		return nil, nil, nil
	}
	values := make(map[string]json.RawMessage, len(context))
	var kinds map[string]string
	for key, value := range context {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, nil, fmt.Errorf("context %q: %w", key, err)
		}
		values[key] = raw

		kind, ok := contextKinds[reflect.TypeOf(value)]
		if !ok {
			continue
		}
		if kinds == nil {
			kinds = map[string]string{}
		}
		kinds[key] = kind
	}
	return values, kinds, nil
}

func decodeContext(values map[string]json.RawMessage, kinds map[string]string) (map[string]any, error) {
	context := make(map[string]any, len(values))
	for key, raw := range values {
		decode, ok := contextDecoders[kinds[key]]
		if !ok {
			decode = decodeAs[any]
		}
		value, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("context %q: %w", key, err)
		}
		context[key] = value
	}
	return context, nil
}

// MarshalJSON writes the whole cause chain. Causes that are not *Info are
// written by message and come back as *Info. Context values of builtin
// scalar types, time.Time, time.Duration and uuid.UUID are tagged with their
// type and read back as that type.
func (i *Info) MarshalJSON() ([]byte, error) {
	values, kinds, err := encodeContext(i.context)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireInfo{
		ID:           i.id,
		CreatedAt:    i.createdAt,
		Message:      i.message,
		Cause:        asInfo(i.cause),
		Context:      values,
		ContextKinds: kinds,
	})
}

func (i *Info) UnmarshalJSON(data []byte) error {
	var w wireInfo
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	context, err := decodeContext(w.Context, w.ContextKinds)
	if err != nil {
		return err
	}

	*i = Info{
		id:        w.ID,
		createdAt: w.CreatedAt,
		message:   w.Message,
		context:   context,
	}
	if w.Cause != nil {
		i.cause = w.Cause
	}
	return nil
}

func (i *Info) ToYAML() ([]byte, error) {
	return yaml.Marshal(i)
}

func FromYAML(data []byte) (*Info, error) {
	info := &Info{}
	if err := yaml.Unmarshal(data, info); err != nil {
		return nil, err
	}
	return info, nil
}

func FromJSON(data []byte) (*Info, error) {
	info := &Info{}
	if err := json.Unmarshal(data, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (i *Info) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", i.message)
	enc.AddString("id", i.id.String())
	enc.AddTime("createdAt", i.createdAt)
	if len(i.context) > 0 {
		if err := enc.AddReflected("context", i.context); err != nil {
			return err
		}
	}
	if i.cause != nil {
		return enc.AddObject("cause", asInfo(i.cause))
	}
	return nil
}

// asInfo converts a foreign error chain into Info values without ids.
func asInfo(err error) *Info {
	if fnx.IsNil(err) {
		return nil
	}
	if info, ok := err.(*Info); ok {
		return info
	}
	return &Info{
		message: err.Error(),
		cause:   errors.Unwrap(err),
		context: map[string]any{},
	}
}
