package outcome

import (
	"fmt"
	"runtime/debug"
)

// Fault describes what a guard captured: the error itself plus, for a
// recovered panic, the stack at the point of capture.
type Fault struct {
	Err      error
	Stack    []byte
	Panicked bool
}

// FailureMapper converts a captured fault into the failure payload type.
type FailureMapper[E any] func(f Fault) E

// PanicError wraps a recovered panic value so it can travel as an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

// Unwrap exposes the panic payload when it already is an error, so
// errors.Is/As chains see through the recovery.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Guard runs op once inside a failure boundary. A normal return becomes a
// Success, a returned error or a panic becomes a Failure. Nothing raised
// by op propagates past this call.
func Guard[T any](op func() (T, error)) Result[T] {
	f, out := execute(op)
	if f != nil {
		return Fail[T](f.Err)
	}
	return out
}

// GuardWith is Guard with an explicit failure mapper, for failure payload
// types other than error.
func GuardWith[T, E any](op func() (T, error), onFailure FailureMapper[E]) Outcome[T, E] {
	f, out := execute(op)
	if f != nil {
		return Failure[T, E](onFailure(*f))
	}
	v, _ := out.Value()
	return Success[T, E](v)
}

// execute evaluates op exactly once, converting a returned error or a
// recovered panic into a Fault.
func execute[T any](op func() (T, error)) (f *Fault, out Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			f = &Fault{
				Err:      &PanicError{Value: r, Stack: stack},
				Stack:    stack,
				Panicked: true,
			}
		}
	}()

	v, err := op()
	if err != nil {
		return &Fault{Err: err}, out
	}
	return nil, Succeed(v)
}
