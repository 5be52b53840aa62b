package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/fnx/pkg/fnx/failure"
	"github.com/ib-77/fnx/pkg/fnx/result"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	out := Start(result.Success(5)).Result()
	if !out.IsSuccess() || out.Result() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue(7).Result()
	if !out.IsSuccess() || out.Result() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	called := false
	out := Start(result.Fail[int]("boom")).
		Then(func(t int) result.Result[int] {
			called = true
			return result.Success(t + 1)
		}).
		Result()

	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	out := FromValue(3).
		Then(func(t int) result.Result[int] { return result.Success(t * 2) }).
		Result()
	if !out.IsSuccess() || out.Result() != 6 {
		t.Fatalf("expected success with 6, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestThen_PanicBecomesFailure(t *testing.T) {
	t.Parallel()
	out := FromValue(3).
		Then(func(int) result.Result[int] { panic(errors.New("exploded")) }).
		Result()
	if out.IsSuccess() || out.Err().Error() != "exploded" {
		t.Fatalf("expected failure 'exploded', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()

	ok := FromValue(4).
		ThenTry(func(t int) (int, error) { return t * t, nil }).
		Result()
	if !ok.IsSuccess() || ok.Result() != 16 {
		t.Fatalf("expected success with 16, got: success=%v, val=%v, err=%v", ok.IsSuccess(), ok.Result(), ok.Err())
	}

	bad := FromValue(10).
		ThenTry(func(t int) (int, error) { return 0, errors.New("try-error") }).
		Result()
	if bad.IsSuccess() || bad.Err() == nil || bad.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: success=%v, err=%v", bad.IsSuccess(), bad.Err())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	out := FromValue(5).Map(func(t int) int { return t + 3 }).Result()
	if !out.IsSuccess() || out.Result() != 8 {
		t.Fatalf("expected success with 8, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}

	out = Start(result.Fail[int]("oops")).Map(func(t int) int { return t + 100 }).Result()
	if out.IsSuccess() || out.Err().Error() != "oops" {
		t.Fatalf("expected failure 'oops', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestTo_ChangesType(t *testing.T) {
	t.Parallel()

	parsed := ToTry(FromValue("21"), strconv.Atoi)
	doubled := ToMap(parsed, func(v int) int { return v * 2 })
	text := To(doubled, func(v int) result.Result[string] { return result.Success(strconv.Itoa(v)) })

	out := text.Result()
	if !out.IsSuccess() || out.Result() != "42" {
		t.Fatalf("expected success with \"42\", got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}

	failed := ToTry(FromValue("x"), strconv.Atoi).Result()
	if failed.IsSuccess() {
		t.Fatalf("expected failure parsing \"x\"")
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()

	sCalled, fCalled := false, false
	out1 := FromValue(11).
		Ensure(func(v int) { sCalled = true }, func(*failure.Info) { fCalled = true }).
		Result()
	if !out1.IsSuccess() || out1.Result() != 11 {
		t.Fatalf("expected success with 11, got: %v, %v", out1.IsSuccess(), out1.Err())
	}
	if !sCalled || fCalled {
		t.Fatalf("expected success side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	sCalled, fCalled = false, false
	out2 := Start(result.Fail[int]("bad")).
		Ensure(func(v int) { sCalled = true }, func(*failure.Info) { fCalled = true }).
		Result()
	if out2.IsSuccess() || out2.Err().Error() != "bad" {
		t.Fatalf("expected failure 'bad', got: success=%v, err=%v", out2.IsSuccess(), out2.Err())
	}
	if sCalled || !fCalled {
		t.Fatalf("expected failure side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	// nil callbacks should be safe
	out3 := FromValue(1).Ensure(nil, nil).Result()
	if !out3.IsSuccess() || out3.Result() != 1 {
		t.Fatalf("expected unchanged success result, got: %v, %v", out3.IsSuccess(), out3.Err())
	}
}

func TestRescue(t *testing.T) {
	t.Parallel()

	out := Start(result.Fail[int]("Error")).
		Rescue(func(*failure.Info) result.Result[int] { return result.Success(42) }).
		Result()
	if !out.IsSuccess() || out.Result() != 42 {
		t.Fatalf("expected rescued 42, got: success=%v, val=%v", out.IsSuccess(), out.Result())
	}
}

func TestOrAnd(t *testing.T) {
	t.Parallel()

	fail1 := Start(result.Fail[int]("first"))
	fail2 := Start(result.Fail[int]("second"))
	ok := FromValue(1)

	if got := fail1.Or(fail2, ok).Result(); !got.IsSuccess() || got.Result() != 1 {
		t.Fatalf("Or should pick the success, got %v", got.Err())
	}
	if got := fail1.Or(fail2).Result(); got.Err().Error() != "first" {
		t.Fatalf("Or without success should keep the first failure, got %v", got.Err())
	}
	if got := ok.And(FromValue(2), fail2, fail1).Result(); got.Err().Error() != "second" {
		t.Fatalf("And should stop at the first failure, got %v", got.Err())
	}
	if got := ok.And(FromValue(2)).Result(); !got.IsSuccess() || got.Result() != 2 {
		t.Fatalf("And with all successes should return the last, got %v", got.Err())
	}
}

func TestRepeatUntilAndWhile(t *testing.T) {
	t.Parallel()

	inc := func(v int) result.Result[int] { return result.Success(v + 1) }

	if got := FromValue(0).RepeatUntil(inc, func(v int) bool { return v < 5 }).Result(); got.Result() != 5 {
		t.Fatalf("expected 5, got %d", got.Result())
	}
	if got := FromValue(10).RepeatUntil(inc, func(v int) bool { return v < 5 }).Result(); got.Result() != 11 {
		t.Fatalf("RepeatUntil runs at least once, expected 11, got %d", got.Result())
	}
	if got := FromValue(10).While(inc, func(v int) bool { return v < 5 }).Result(); got.Result() != 10 {
		t.Fatalf("While may run zero times, expected 10, got %d", got.Result())
	}

	failAt3 := func(v int) result.Result[int] {
		if v == 3 {
			return result.Fail[int]("three")
		}
		return result.Success(v + 1)
	}
	if got := FromValue(0).While(failAt3, func(int) bool { return true }).Result(); got.Err().Error() != "three" {
		t.Fatalf("While should stop on failure, got %v", got.Err())
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	s := FromValue(3).Finally(
		func(v int) int { return v + 100 },
		func(*failure.Info) int { return -1 },
	)
	if s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}

	f := Finally(Start(result.Fail[int]("bad")),
		func(v int) string { return strconv.Itoa(v) },
		func(err error) string { return "failed: " + err.Error() },
	)
	if f != "failed: bad" {
		t.Fatalf("expected \"failed: bad\", got %q", f)
	}
}
