package swarm

import (
	"testing"
	"time"
)

func TestManualSchedulerOrder(t *testing.T) {
	s := NewManualScheduler()
	var order []int
	s.AfterFunc(30*time.Millisecond, func() { order = append(order, 3) })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, 1) })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, 2) })

	s.Advance(100 * time.Millisecond)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("Expected [1 2 3], got %v", order)
	}
}

func TestManualSchedulerStop(t *testing.T) {
	s := NewManualScheduler()
	fired := false
	timer := s.AfterFunc(10*time.Millisecond, func() { fired = true })

	if !timer.Stop() {
		t.Error("Expected first Stop to succeed")
	}
	if timer.Stop() {
		t.Error("Expected second Stop to report false")
	}
	s.Advance(time.Second)
	if fired {
		t.Error("Expected stopped task not to fire")
	}
}

func TestManualSchedulerStopAfterFire(t *testing.T) {
	s := NewManualScheduler()
	timer := s.AfterFunc(0, func() {})
	s.Advance(0)
	if timer.Stop() {
		t.Error("Expected Stop after firing to report false")
	}
	if n := s.Pending(); n != 0 {
		t.Errorf("Expected nothing pending, got %d", n)
	}
}
