package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func TestExecute_Success(t *testing.T) {
	cb := New(DefaultConfig("test"))

	result, err := cb.Execute(func() (interface{}, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result != "ok" {
		t.Errorf("Execute() = %v, want ok", result)
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v, want closed", cb.State())
	}
}

func TestExecute_TripsAfterFailures(t *testing.T) {
	cfg := Config{
		Name:             "trippy",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.5,
		MinRequests:      3,
	}
	cb := New(cfg)

	boom := errors.New("boom")
	for i := 0; i < 5; i++ {
		_, _ = cb.Execute(func() (interface{}, error) {
			return nil, boom
		})
	}

	if !cb.IsOpen() {
		t.Fatalf("breaker not open after repeated failures, state = %v", cb.State())
	}

	_, err := cb.Execute(func() (interface{}, error) {
		t.Error("function must not run while circuit is open")
		return nil, nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Execute() error = %v, want ErrOpenState", err)
	}
}

func TestExecute_StaysClosedBelowMinRequests(t *testing.T) {
	cfg := DefaultConfig("patient")
	cfg.MinRequests = 10
	cb := New(cfg)

	for i := 0; i < 5; i++ {
		_, _ = cb.Execute(func() (interface{}, error) {
			return nil, errors.New("fail")
		})
	}

	if cb.IsOpen() {
		t.Error("breaker opened before reaching the minimum sample size")
	}
}

func TestName(t *testing.T) {
	cb := New(GrammarAPIConfig())
	if cb.Name() != "grammar-api" {
		t.Errorf("Name() = %q, want grammar-api", cb.Name())
	}
}
