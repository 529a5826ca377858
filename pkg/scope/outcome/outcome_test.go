package outcome

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/uuid"
)

var _ WithErr[int] = Outcome[int]{}

func TestOk_CarriesValue(t *testing.T) {
	t.Parallel()

	o := Ok(5)
	if !o.IsOk() || o.Value() != 5 {
		t.Fatalf("expected ok with 5, got: ok=%v, val=%v, err=%v", o.IsOk(), o.Value(), o.Err())
	}
	if o.Err() != nil {
		t.Fatalf("expected nil error, got: %v", o.Err())
	}
	if o.Id() == uuid.Nil {
		t.Fatalf("expected a non-nil id")
	}
	if o.CreatedAt().IsZero() {
		t.Fatalf("expected a creation time")
	}
}

func TestFail_ForwardsErrorUnchanged(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	o := Fail[int](err)
	if o.IsOk() {
		t.Fatalf("expected failure")
	}
	if !errors.Is(o.Err(), err) {
		t.Fatalf("expected 'boom' forwarded unchanged, got: %v", o.Err())
	}
	if o.Value() != 0 {
		t.Fatalf("expected zero value, got: %d", o.Value())
	}
}

func TestFail_NilErrorStaysNotOk(t *testing.T) {
	t.Parallel()

	o := Fail[int](nil)
	if o.IsOk() {
		t.Fatalf("expected a nil-error failure to stay not ok")
	}
	if o.IsZero() {
		t.Fatalf("expected a constructed failure to not report IsZero")
	}
	if o.Err() != nil {
		t.Fatalf("expected the nil error forwarded untouched, got: %v", o.Err())
	}

	values, err := Join(Ok(1), Fail[int](nil))
	if err != nil {
		t.Fatalf("expected nothing to accumulate from a nil-error failure, got: %v", err)
	}
	if len(values) != 1 || values[0] != 1 {
		t.Fatalf("expected surviving values [1], got: %v", values)
	}
}

func TestOf_WrapsOrdinaryReturns(t *testing.T) {
	t.Parallel()

	good := Of(strconv.Atoi("42"))
	if !good.IsOk() || good.Value() != 42 {
		t.Fatalf("expected ok with 42, got: ok=%v, val=%v, err=%v", good.IsOk(), good.Value(), good.Err())
	}

	bad := Of(strconv.Atoi("aa"))
	if bad.IsOk() || bad.Err() == nil {
		t.Fatalf("expected failure, got: ok=%v, err=%v", bad.IsOk(), bad.Err())
	}
}

func TestFailFrom_PreservesIdentityAcrossTypes(t *testing.T) {
	t.Parallel()

	from := Fail[string](errors.New("gone"))
	to := FailFrom[string, int](from)

	if to.IsOk() {
		t.Fatalf("expected forwarded failure")
	}
	if to.Id() != from.Id() || !to.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatalf("expected identity preserved across types")
	}
	if to.Err() == nil || to.Err().Error() != "gone" {
		t.Fatalf("expected 'gone', got: %v", to.Err())
	}
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	var zero Outcome[int]
	if !zero.IsZero() {
		t.Fatalf("expected zero Outcome to report IsZero")
	}
	if Ok(1).IsZero() {
		t.Fatalf("expected ok Outcome to not report IsZero")
	}
	if Fail[int](errors.New("x")).IsZero() {
		t.Fatalf("expected failed Outcome to not report IsZero")
	}
}

func TestOutcome_UsableThroughWithErr(t *testing.T) {
	t.Parallel()

	var step WithErr[string] = Ok("ready")
	if !step.IsOk() || step.Value() != "ready" {
		t.Fatalf("expected interface view of ok step, got: ok=%v, val=%q", step.IsOk(), step.Value())
	}
	if step.CreatedAt().IsZero() || step.Err() != nil {
		t.Fatalf("expected creation time and nil error through the interface")
	}
}
