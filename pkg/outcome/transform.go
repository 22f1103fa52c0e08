package outcome

// Finally collapses an Outcome to a plain value via one of two handlers.
func Finally[T, E, U any](o Outcome[T, E], onSuccess func(v T) U, onFailure func(e E) U) U {
	if o.isSuccess {
		return onSuccess(o.value)
	}
	return onFailure(o.failure)
}

// Tee invokes onSuccess for its side effect on a Success and returns the
// receiver unchanged. Failures pass through untouched.
func (o Outcome[T, E]) Tee(onSuccess func(v T)) Outcome[T, E] {
	if o.isSuccess {
		onSuccess(o.value)
	}
	return o
}

// TeeFail is the failure-side Tee: onFailure runs only on a Failure.
func (o Outcome[T, E]) TeeFail(onFailure func(e E)) Outcome[T, E] {
	if !o.isSuccess {
		onFailure(o.failure)
	}
	return o
}

// DoubleTee runs exactly one of the two side effects and returns the
// receiver unchanged.
func (o Outcome[T, E]) DoubleTee(onSuccess func(v T), onFailure func(e E)) Outcome[T, E] {
	if o.isSuccess {
		onSuccess(o.value)
	} else {
		onFailure(o.failure)
	}
	return o
}

// Map transforms the successful value. The transform is assumed total; a
// fault inside it escapes to the caller (see GuardMap). Failures pass
// through with payload and identity intact.
func Map[In, Out, E any](o Outcome[In, E], transform func(v In) Out) Outcome[Out, E] {
	if o.isSuccess {
		return Success[Out, E](transform(o.value))
	}
	return FailFrom[In, Out](o)
}

// GuardMap runs the transform under the synchronous guard: a fault raised
// by the transform becomes a Failure instead of escaping. Failures pass
// through and the transform is never invoked.
func GuardMap[In, Out any](o Result[In], transform func(v In) (Out, error)) Result[Out] {
	if !o.isSuccess {
		return FailFrom[In, Out](o)
	}
	return Guard(func() (Out, error) {
		return transform(o.value)
	})
}

// GuardMapWith is GuardMap for failure payload types other than error.
func GuardMapWith[In, Out, E any](o Outcome[In, E], transform func(v In) (Out, error),
	onFailure FailureMapper[E]) Outcome[Out, E] {

	if !o.isSuccess {
		return FailFrom[In, Out](o)
	}
	return GuardWith(func() (Out, error) {
		return transform(o.value)
	}, onFailure)
}

// MapFailure transforms the failure payload, leaving successes untouched.
// The transform is assumed total.
func MapFailure[T, E, G any](o Outcome[T, E], transform func(e E) G) Outcome[T, G] {
	if o.isSuccess {
		return Outcome[T, G]{
			id:        o.id,
			createdAt: o.createdAt,
			value:     o.value,
			isSuccess: true,
		}
	}
	return Outcome[T, G]{
		id:        o.id,
		createdAt: o.createdAt,
		failure:   transform(o.failure),
	}
}

// GuardMapFailure transforms the failure payload under the synchronous
// guard. A fault raised by the transform itself becomes the new failure
// payload; the original payload is discarded.
func GuardMapFailure[T any](o Result[T], transform func(err error) (error, error)) Result[T] {
	if o.isSuccess {
		return o
	}
	f, mapped := execute(func() (error, error) {
		return transform(o.failure)
	})
	if f != nil {
		return Fail[T](f.Err)
	}
	next, _ := mapped.Value()
	return Fail[T](next)
}

// GuardMapFailureWith is GuardMapFailure across failure payload types;
// onFailure shapes the payload produced when the transform itself faults.
func GuardMapFailureWith[T, E, G any](o Outcome[T, E], transform func(e E) (G, error),
	onFailure FailureMapper[G]) Outcome[T, G] {

	if o.isSuccess {
		return Outcome[T, G]{
			id:        o.id,
			createdAt: o.createdAt,
			value:     o.value,
			isSuccess: true,
		}
	}
	f, mapped := execute(func() (G, error) {
		return transform(o.failure)
	})
	if f != nil {
		return Failure[T, G](onFailure(*f))
	}
	next, _ := mapped.Value()
	return Failure[T, G](next)
}

// Recover converts a Failure into a Success via the transform; successes
// pass through unchanged. The transform is assumed total.
func Recover[T, E any](o Outcome[T, E], transform func(e E) T) Outcome[T, E] {
	if o.isSuccess {
		return o
	}
	return Success[T, E](transform(o.failure))
}

// GuardRecover is Recover under the synchronous guard: if the transform
// itself faults, the result is a Failure wrapping that new fault rather
// than a recovered Success.
func GuardRecover[T any](o Result[T], transform func(err error) (T, error)) Result[T] {
	if o.isSuccess {
		return o
	}
	return Guard(func() (T, error) {
		return transform(o.failure)
	})
}

// GuardRecoverWith is GuardRecover for failure payload types other than
// error.
func GuardRecoverWith[T, E any](o Outcome[T, E], transform func(e E) (T, error),
	onFailure FailureMapper[E]) Outcome[T, E] {

	if o.isSuccess {
		return o
	}
	return GuardWith(func() (T, error) {
		return transform(o.failure)
	}, onFailure)
}
