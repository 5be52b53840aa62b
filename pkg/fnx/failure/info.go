package failure

import (
	"errors"
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/fnx/pkg/fnx"
)

type Info struct {
	id        uuid.UUID
	createdAt time.Time
	message   string
	cause     error
	context   map[string]any
}

func New(message string) *Info {
	return Wrap(message, nil, nil)
}

func NewWithContext(message string, context map[string]any) *Info {
	return Wrap(message, nil, context)
}

// Wrap builds an Info around an underlying cause. cause and context may be
// nil; a typed nil cause is stored as no cause.
func Wrap(message string, cause error, context map[string]any) *Info {
	if fnx.IsNil(cause) {
		cause = nil
	}
	return &Info{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		message:   message,
		cause:     cause,
		context:   cloneContext(context),
	}
}

// FromError returns err itself when it is an *Info, otherwise an Info with
// err's message and err as the cause. An Info wrapped by another error is
// not unwrapped: the outer message wins.
func FromError(err error) *Info {
	if fnx.IsNil(err) {
		return nil
	}
	if info, ok := err.(*Info); ok {
		return info
	}
	return Wrap(err.Error(), err, nil)
}

func (i *Info) ID() uuid.UUID {
	return i.id
}

func (i *Info) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Info) Message() string {
	return i.message
}

func (i *Info) Cause() error {
	return i.cause
}

// Context returns a copy of the context map.
func (i *Info) Context() map[string]any {
	return cloneContext(i.context)
}

// With returns a copy of i with key set to value in its context. The copy
// keeps i's id: it describes the same failure.
func (i *Info) With(key string, value any) *Info {
	ctx := cloneContext(i.context)
	ctx[key] = value
	return &Info{
		id:        i.id,
		createdAt: i.createdAt,
		message:   i.message,
		cause:     i.cause,
		context:   ctx,
	}
}

func (i *Info) Error() string {
	if i == nil {
		return ""
	}
	return i.message
}

func (i *Info) Unwrap() error {
	if i == nil {
		return nil
	}
	return i.cause
}

// Equal compares message, cause chain and context. ID and CreatedAt are
// identity, not content, and are ignored.
func (i *Info) Equal(other *Info) bool {
	if i == nil || other == nil {
		return i == nil && other == nil
	}
	if i.message != other.message {
		return false
	}
	return causesEqual(i.cause, other.cause) &&
		fnx.Equal(cloneContext(i.context), cloneContext(other.context))
}

// causesEqual walks both chains comparing messages level by level.
func causesEqual(a, b error) bool {
	for a != nil && b != nil {
		if a.Error() != b.Error() {
			return false
		}
		a, b = errors.Unwrap(a), errors.Unwrap(b)
	}
	return a == nil && b == nil
}

func cloneContext(context map[string]any) map[string]any {
	if context == nil {
		return map[string]any{}
	}
	return maps.Clone(context)
}
