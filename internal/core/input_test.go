package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionPause)
	if !f.Has(ActionLeft) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestInputFrameMask(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionPause)
	f.Set(ActionQuit) // frontend-only, not encoded

	m := f.Mask()
	if m != 0b110 {
		t.Fatalf("Mask() = %03b, expected 110", m)
	}

	back := InputFrameFromMask(m)
	if back.Has(ActionLeft) || !back.Has(ActionRight) || !back.Has(ActionPause) {
		t.Errorf("InputFrameFromMask(%03b) = %v", m, back.Actions)
	}
	if back.Has(ActionQuit) {
		t.Error("quit must not survive encoding")
	}
}
