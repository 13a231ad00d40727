package resilience

import (
	"errors"
	"testing"
	"time"
)

var errIdentityDown = errors.New("identity provider unavailable")

func newTestBreaker(threshold int, openTimeout time.Duration) (*CircuitBreaker, *time.Time) {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   1,
	})
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now
}

func fail() error { return errIdentityDown }
func pass() error { return nil }

func TestCircuitBreaker_OpensAfterThresholdAndRecovers(t *testing.T) {
	b, now := newTestBreaker(2, 5*time.Second)

	if err := b.Execute(fail, nil); !errors.Is(err, errIdentityDown) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	_ = b.Execute(fail, nil)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	called := false
	err := b.Execute(func() error { called = true; return nil }, nil)
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("expected short-circuit while open, err=%v called=%v", err, called)
	}

	*now = now.Add(6 * time.Second)
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open after timeout, got %s", state)
	}
	if err := b.Execute(pass, nil); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	b, now := newTestBreaker(1, time.Second)

	_ = b.Execute(fail, nil)
	*now = now.Add(2 * time.Second)

	if err := b.Execute(fail, nil); !errors.Is(err, errIdentityDown) {
		t.Fatalf("expected probe error, got %v", err)
	}
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after failed probe, got %s", state)
	}
}

func TestCircuitBreaker_IgnoresNonFailureErrors(t *testing.T) {
	b, _ := newTestBreaker(1, time.Second)
	errDenied := errors.New("token inactive")

	for i := 0; i < 3; i++ {
		err := b.Execute(func() error { return errDenied }, func(err error) bool {
			return errors.Is(err, errIdentityDown)
		})
		if !errors.Is(err, errDenied) {
			t.Fatalf("expected caller error to pass through, got %v", err)
		}
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed when errors are not dependency failures, got %s", state)
	}
}

func TestCircuitBreaker_DisabledAlwaysRuns(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 3; i++ {
		if err := b.Execute(fail, nil); !errors.Is(err, errIdentityDown) {
			t.Fatalf("expected dependency error, got %v", err)
		}
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("disabled breaker should stay closed, got %s", state)
	}
}

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	want := DefaultCircuitBreakerConfig()
	if got.FailureThreshold != want.FailureThreshold || got.OpenTimeout != want.OpenTimeout || got.HalfOpenMaxReq != want.HalfOpenMaxReq {
		t.Fatalf("unexpected normalized config: %+v", got)
	}
}
