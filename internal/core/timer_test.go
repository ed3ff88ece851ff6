package core

import (
	"testing"
	"time"
)

func TestFixedStepInterval(t *testing.T) {
	fs := NewFixedStep(10)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("Interval = %v, want 100ms", fs.Interval())
	}
	fs.SetTPS(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("non-positive TPS must fall back to 60, got %v", fs.Interval())
	}
}

func TestFixedStepFirstTickIsImmediate(t *testing.T) {
	fs := NewFixedStep(1)
	if !fs.ShouldStep() {
		t.Fatal("a fresh controller must allow the first tick straight away")
	}
	if fs.ShouldStep() {
		t.Fatal("second tick must wait for the interval to elapse")
	}
}
