package outcome

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidFailure is raised by MustValue when the held failure payload
// is not an error and therefore cannot be re-raised as one.
var ErrInvalidFailure = errors.New("outcome: failure payload is not an error")

// Outcome holds the result of an operation as exactly one of two variants:
// a success carrying a value of type T, or a failure carrying a payload of
// type E. Instances are immutable once constructed; every transformation
// produces a new Outcome.
type Outcome[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   E
	isSuccess bool
}

// Result is the common shape where the failure payload is a plain error.
// The unmapped guard constructors and combinators are defined on Result
// only, so a raw fault always fits the declared failure type.
type Result[T any] = Outcome[T, error]

func Success[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{
		failure:   e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Succeed[T any](v T) Result[T] {
	return Success[T, error](v)
}

func Fail[T any](err error) Result[T] {
	return Failure[T, error](err)
}

// FailFrom carries a failure across a value-type change, preserving the
// instance identity and creation time of the original.
func FailFrom[In, Out, E any](from Outcome[In, E]) Outcome[Out, E] {
	return Outcome[Out, E]{
		id:        from.id,
		createdAt: from.createdAt,
		failure:   from.failure,
		isSuccess: false,
	}
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T, E]) IsFailure() bool {
	return !o.isSuccess
}

// Value returns the held value. The second return is false on a Failure;
// the zero T it accompanies is not a held value.
func (o Outcome[T, E]) Value() (T, bool) {
	return o.value, o.isSuccess
}

// Err returns the held failure payload. The second return is false on a
// Success.
func (o Outcome[T, E]) Err() (E, bool) {
	return o.failure, !o.isSuccess
}

// ValueOr returns the held value, or fallback on a Failure.
func (o Outcome[T, E]) ValueOr(fallback T) T {
	if o.isSuccess {
		return o.value
	}
	return fallback
}

// ValueOrElse returns the held value, or the result of orElse applied to
// the failure payload. A fault inside orElse is not contained here; it
// propagates to the caller.
func (o Outcome[T, E]) ValueOrElse(orElse func(e E) T) T {
	if o.isSuccess {
		return o.value
	}
	return orElse(o.failure)
}

// MustValue returns the held value, or panics with the failure payload.
// A payload that is not a non-nil error panics with ErrInvalidFailure
// instead, so a Failure never unwraps silently.
func (o Outcome[T, E]) MustValue() T {
	if o.isSuccess {
		return o.value
	}
	if err, ok := any(o.failure).(error); ok && !IsNil(err) {
		panic(err)
	}
	panic(fmt.Errorf("%w: %v (%T)", ErrInvalidFailure, o.failure, o.failure))
}

func (o Outcome[T, E]) Id() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC)
func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

// Equal compares variant and payload only. Instance identity and creation
// time never participate: two successes are equal iff their values are,
// two failures iff their payloads are, and a success never equals a
// failure.
func (o Outcome[T, E]) Equal(other Outcome[T, E]) bool {
	if o.isSuccess != other.isSuccess {
		return false
	}
	if o.isSuccess {
		return reflect.DeepEqual(o.value, other.value)
	}
	return reflect.DeepEqual(o.failure, other.failure)
}

// Hash derives a 64-bit hash from the variant and payload, consistent
// with Equal: payloads that compare equal hash alike. Pointers hash by
// pointee, the same way Equal compares them.
func (o Outcome[T, E]) Hash() uint64 {
	h := fnv.New64a()
	if o.isSuccess {
		io.WriteString(h, "success:")
		hashPayload(h, reflect.ValueOf(o.value), map[uintptr]bool{})
	} else {
		io.WriteString(h, "failure:")
		hashPayload(h, reflect.ValueOf(o.failure), map[uintptr]bool{})
	}
	return h.Sum64()
}

// hashPayload writes a stable rendering of v, following pointers and
// interfaces so the rendering depends on what Equal compares, never on
// addresses. seen breaks pointer cycles.
func hashPayload(w io.Writer, v reflect.Value, seen map[uintptr]bool) {
	if !v.IsValid() {
		io.WriteString(w, "<nil>")
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		fmt.Fprintf(w, "b%v", v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		fmt.Fprintf(w, "i%d", v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		fmt.Fprintf(w, "u%d", v.Uint())
	case reflect.Float32, reflect.Float64:
		fmt.Fprintf(w, "f%v", v.Float())
	case reflect.Complex64, reflect.Complex128:
		fmt.Fprintf(w, "c%v", v.Complex())
	case reflect.String:
		fmt.Fprintf(w, "s%d:%s", v.Len(), v.String())
	case reflect.Pointer:
		if v.IsNil() {
			io.WriteString(w, "<nil>")
			return
		}
		if seen[v.Pointer()] {
			io.WriteString(w, "<cycle>")
			return
		}
		seen[v.Pointer()] = true
		io.WriteString(w, "*")
		hashPayload(w, v.Elem(), seen)
	case reflect.Interface:
		if v.IsNil() {
			io.WriteString(w, "<nil>")
			return
		}
		hashPayload(w, v.Elem(), seen)
	case reflect.Struct:
		io.WriteString(w, "{")
		for i := range v.NumField() {
			hashPayload(w, v.Field(i), seen)
			io.WriteString(w, ";")
		}
		io.WriteString(w, "}")
	case reflect.Array, reflect.Slice:
		if v.Kind() == reflect.Slice && v.IsNil() {
			io.WriteString(w, "<nil>")
			return
		}
		fmt.Fprintf(w, "[%d:", v.Len())
		for i := range v.Len() {
			hashPayload(w, v.Index(i), seen)
			io.WriteString(w, ";")
		}
		io.WriteString(w, "]")
	case reflect.Map:
		if v.IsNil() {
			io.WriteString(w, "<nil>")
			return
		}
		// iteration order is random, so combine per-entry hashes
		// order-independently
		var acc uint64
		it := v.MapRange()
		for it.Next() {
			entry := fnv.New64a()
			hashPayload(entry, it.Key(), seen)
			io.WriteString(entry, "=")
			hashPayload(entry, it.Value(), seen)
			acc ^= entry.Sum64()
		}
		fmt.Fprintf(w, "m%d:%d", v.Len(), acc)
	default:
		// chan, func, unsafe pointer: identity is all Equal sees
		fmt.Fprintf(w, "p%d", v.Pointer())
	}
}

func (o Outcome[T, E]) String() string {
	if o.isSuccess {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Failure(%v)", o.failure)
}
