package outcome

import (
	"errors"
	"testing"
)

func TestSuccess_Accessors(t *testing.T) {
	t.Parallel()
	o := Succeed("hi")

	if !o.IsSuccess() || o.IsFailure() {
		t.Fatalf("expected success, got: success=%v failure=%v", o.IsSuccess(), o.IsFailure())
	}
	v, ok := o.Value()
	if !ok || v != "hi" {
		t.Fatalf("expected value 'hi', got: %v ok=%v", v, ok)
	}
	if err, ok := o.Err(); ok {
		t.Fatalf("success must not expose a failure payload, got: %v", err)
	}
}

func TestFailure_Accessors(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	o := Fail[string](boom)

	if !o.IsFailure() || o.IsSuccess() {
		t.Fatalf("expected failure, got: success=%v failure=%v", o.IsSuccess(), o.IsFailure())
	}
	if v, ok := o.Value(); ok {
		t.Fatalf("failure must not expose a value, got: %v", v)
	}
	err, ok := o.Err()
	if !ok || !errors.Is(err, boom) {
		t.Fatalf("expected payload 'boom', got: %v ok=%v", err, ok)
	}
}

func TestAccessors_Idempotent(t *testing.T) {
	t.Parallel()
	o := Succeed(42)

	v1, ok1 := o.Value()
	v2, ok2 := o.Value()
	if v1 != v2 || ok1 != ok2 {
		t.Fatalf("accessors must be stable: %v/%v %v/%v", v1, v2, ok1, ok2)
	}
}

func TestValueOr(t *testing.T) {
	t.Parallel()

	if got := Succeed("x").ValueOr("fallback"); got != "x" {
		t.Fatalf("expected 'x', got: %v", got)
	}
	// integer-code failure payload with a textual default
	if got := Failure[string, int](404).ValueOr("N/A"); got != "N/A" {
		t.Fatalf("expected 'N/A', got: %v", got)
	}
}

func TestValueOrElse(t *testing.T) {
	t.Parallel()

	called := false
	got := Succeed(7).ValueOrElse(func(error) int {
		called = true
		return -1
	})
	if got != 7 || called {
		t.Fatalf("orElse must not run on success: got=%v called=%v", got, called)
	}

	got = Fail[int](errors.New("nope")).ValueOrElse(func(err error) int {
		return len(err.Error())
	})
	if got != 4 {
		t.Fatalf("expected 4, got: %v", got)
	}
}

func TestValueOrElse_FaultEscapes(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r != "unguarded orElse" {
			t.Fatalf("the fault must reach the caller, got: %v", r)
		}
	}()
	Fail[int](errors.New("boom")).ValueOrElse(func(err error) int {
		panic("unguarded orElse")
	})
}

func TestMustValue_Success(t *testing.T) {
	t.Parallel()
	if got := Succeed("ok").MustValue(); got != "ok" {
		t.Fatalf("expected 'ok', got: %v", got)
	}
}

func TestMustValue_PanicsWithHeldError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, boom) {
			t.Fatalf("expected panic with 'boom', got: %v", r)
		}
	}()
	Fail[int](boom).MustValue()
}

func TestMustValue_NonErrorPayload(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidFailure) {
			t.Fatalf("expected ErrInvalidFailure, got: %v", r)
		}
	}()
	Failure[string, int](500).MustValue()
}

func TestEqual_StructuralOnPayload(t *testing.T) {
	t.Parallel()

	a := Succeed("v")
	b := Succeed("v")
	if !a.Equal(b) {
		t.Fatalf("equal payloads must compare equal")
	}
	if a.Id() == b.Id() {
		t.Fatalf("distinct instances must carry distinct ids")
	}

	e := errors.New("e")
	if !Fail[string](e).Equal(Fail[string](e)) {
		t.Fatalf("equal failure payloads must compare equal")
	}
	if Succeed("v").Equal(Fail[string](e)) {
		t.Fatalf("a success never equals a failure")
	}
	if Succeed("v").Equal(Succeed("w")) {
		t.Fatalf("different values must not compare equal")
	}
}

func TestHash_AgreesWithEqual(t *testing.T) {
	t.Parallel()

	if Succeed("v").Hash() != Succeed("v").Hash() {
		t.Fatalf("equal payloads must hash alike")
	}
	if Succeed("v").Hash() == Failure[string, string]("v").Hash() {
		t.Fatalf("variants must hash apart for the same payload")
	}
}

func TestHash_PointerPayloadsByPointee(t *testing.T) {
	t.Parallel()

	a, b := 7, 7
	x, y := Succeed(&a), Succeed(&b)
	if !x.Equal(y) {
		t.Fatalf("equal pointees must compare equal")
	}
	if x.Hash() != y.Hash() {
		t.Fatalf("equal payloads must hash alike: %d vs %d", x.Hash(), y.Hash())
	}

	c := 8
	if x.Hash() == Succeed(&c).Hash() {
		t.Fatalf("different pointees must hash apart")
	}
}

func TestHash_StructPointerPayloads(t *testing.T) {
	t.Parallel()

	type box struct {
		n  int
		ok bool
	}

	p := Succeed(&box{n: 3, ok: true})
	q := Succeed(&box{n: 3, ok: true})
	if !p.Equal(q) || p.Hash() != q.Hash() {
		t.Fatalf("equal struct pointees must compare and hash alike")
	}
	if p.Hash() == Succeed(&box{n: 4, ok: true}).Hash() {
		t.Fatalf("different struct pointees must hash apart")
	}
}

func TestHash_MapPayloadOrderIndependent(t *testing.T) {
	t.Parallel()

	m1 := map[string]int{"a": 1, "b": 2, "c": 3}
	m2 := map[string]int{"c": 3, "b": 2, "a": 1}

	x := Failure[int, map[string]int](m1)
	y := Failure[int, map[string]int](m2)
	if !x.Equal(y) || x.Hash() != y.Hash() {
		t.Fatalf("equal maps must compare and hash alike")
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if got := Succeed(1).String(); got != "Success(1)" {
		t.Fatalf("got: %v", got)
	}
	if got := Failure[int, string]("bad").String(); got != "Failure(bad)" {
		t.Fatalf("got: %v", got)
	}
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	src := Fail[int](errors.New("boom"))
	dst := FailFrom[int, string](src)

	if dst.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if dst.Id() != src.Id() || !dst.CreatedAt().Equal(src.CreatedAt()) {
		t.Fatalf("failure propagation must preserve identity")
	}
}
