package core

import "testing"

func TestInputFrameKeepsArrivalOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionLeft)
	f.Set(ActionRight)

	want := []Action{ActionRight, ActionLeft, ActionRight}
	if len(f.Order) != len(want) {
		t.Fatalf("Order = %v, want %v", f.Order, want)
	}
	for i, a := range want {
		if f.Order[i] != a {
			t.Errorf("Order[%d] = %v, want %v", i, f.Order[i], a)
		}
	}
	if !f.Has(ActionLeft) || !f.Has(ActionRight) {
		t.Error("Has should report every set action")
	}

	f.Clear()
	if len(f.Order) != 0 || f.Has(ActionRight) {
		t.Errorf("Clear left %v", f.Order)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) || len(f.Order) != 1 {
		t.Error("Set on a zero frame should record the action")
	}
}
