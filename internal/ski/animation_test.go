package ski

import "testing"

func TestAnimAdvancesAtCadence(t *testing.T) {
	a := newAnim(3, 2, nil)
	a.Start()

	// Each frame is held for two ticks; the sequence ends after the last
	// frame has had its full hold.
	expected := []int{0, 1, 1, 2, 2, 2}
	for i, want := range expected {
		a.Advance()
		if a.Frame() != want {
			t.Errorf("after %d advances, Frame() = %d, expected %d", i+1, a.Frame(), want)
		}
	}

	if a.Running() {
		t.Error("animation should have finished")
	}
	if a.Frame() != 2 {
		t.Errorf("finished animation should hold last frame, got %d", a.Frame())
	}
}

func TestAnimCompletionCallbackFiresOnce(t *testing.T) {
	fired := 0
	a := newAnim(2, 1, func() { fired++ })
	a.Start()

	for i := 0; i < 10; i++ {
		a.Advance()
	}

	if fired != 1 {
		t.Errorf("callback fired %d times, expected exactly once", fired)
	}
}

func TestAnimStopSuppressesCallback(t *testing.T) {
	fired := 0
	a := newAnim(2, 1, func() { fired++ })
	a.Start()
	a.Advance()
	a.Stop()
	for i := 0; i < 5; i++ {
		a.Advance()
	}

	if fired != 0 {
		t.Errorf("callback fired %d times after Stop, expected 0", fired)
	}
	if a.Running() {
		t.Error("stopped animation should not be running")
	}
}

func TestAnimStartRewinds(t *testing.T) {
	a := newAnim(4, 1, nil)
	a.Start()
	a.Advance()
	a.Advance()
	if a.Frame() != 2 {
		t.Fatalf("setup: Frame() = %d, expected 2", a.Frame())
	}

	a.Start()
	if a.Frame() != 0 {
		t.Errorf("Start should rewind to frame 0, got %d", a.Frame())
	}
	if !a.Running() {
		t.Error("restarted animation should be running")
	}
}

func TestAnimCallbackMayRestart(t *testing.T) {
	var a *anim
	loops := 0
	a = newAnim(2, 1, func() {
		loops++
		if loops < 3 {
			a.Start()
		}
	})
	a.Start()

	for i := 0; i < 20; i++ {
		a.Advance()
	}

	if loops != 3 {
		t.Errorf("callback restarted %d loops, expected 3", loops)
	}
	if a.Running() {
		t.Error("animation should stop once callback stops restarting it")
	}
}

func TestAnimDegenerateConfigClamped(t *testing.T) {
	a := newAnim(0, 0, nil)
	a.Start()
	a.Advance()

	if a.Running() {
		t.Error("single-frame animation should finish after one tick")
	}
	if a.Frame() != 0 {
		t.Errorf("Frame() = %d, expected 0", a.Frame())
	}
}
