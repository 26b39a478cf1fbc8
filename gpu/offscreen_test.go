package gpu

import "testing"

func TestOffscreenStep(t *testing.T) {
	o := &Offscreen{w: 4, h: 2}
	if w, h := o.Size(); w != 4 || h != 2 {
		t.Error("Expected size 4x2, got", w, h)
	}
	if n := o.Step(); n != 0 {
		t.Error("Expected 0 callbacks, got", n)
	}

	var calls []int
	o.RequestFrame(func() { calls = append(calls, 1) })
	o.RequestFrame(func() {
		calls = append(calls, 2)
		o.RequestFrame(func() { calls = append(calls, 3) })
	})

	if n := o.Step(); n != 2 {
		t.Error("Expected 2 callbacks, got", n)
	}
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Fatal("Expected calls [1 2], got", calls)
	}

	// Frames requested during a step wait for the next one
	if n := o.Step(); n != 1 {
		t.Error("Expected 1 callback, got", n)
	}
	if len(calls) != 3 || calls[2] != 3 {
		t.Error("Expected calls [1 2 3], got", calls)
	}
	if n := o.Step(); n != 0 {
		t.Error("Expected 0 callbacks, got", n)
	}
}
