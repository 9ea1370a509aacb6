package command

import (
	"errors"
	"testing"
)

func TestExecuteReturnsResult(t *testing.T) {
	bus := New()
	ran := false
	cmd := bus.Execute(Request{ID: "docs", Label: "Docs", Run: func() error {
		ran = true
		return nil
	}})

	msg := cmd()
	result, ok := msg.(ActionResult)
	if !ok {
		t.Fatalf("expected ActionResult, got %T", msg)
	}
	if !ran {
		t.Fatal("run func must execute")
	}
	if result.ID != "docs" || result.Label != "Docs" || result.Err != nil {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestExecutePropagatesError(t *testing.T) {
	bus := New()
	boom := errors.New("boom")
	msg := bus.Execute(Request{ID: "x", Run: func() error { return boom }})()
	result := msg.(ActionResult)
	if !errors.Is(result.Err, boom) {
		t.Fatalf("expected wrapped error, got %v", result.Err)
	}
}

func TestExecuteWithoutRunStillReports(t *testing.T) {
	bus := New()
	msg := bus.Execute(Request{ID: "inert", Label: "Inert"})()
	result, ok := msg.(ActionResult)
	if !ok {
		t.Fatalf("expected ActionResult, got %T", msg)
	}
	if result.Err != nil || result.ID != "inert" {
		t.Fatalf("unexpected result %+v", result)
	}
}
