package ski

// anim steps a frame index forward at a fixed tick cadence. When the last
// frame has been held for its full duration the sequence stops and the
// completion callback, if any, fires exactly once per Start.
//
// anim never touches wall clocks; it advances only when the simulation
// advances, so paused games hold their pose and tests drive it directly.
type anim struct {
	frames        int
	ticksPerFrame int
	onDone        func()

	frame   int
	elapsed int
	running bool
}

func newAnim(frames, ticksPerFrame int, onDone func()) *anim {
	if frames < 1 {
		frames = 1
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &anim{frames: frames, ticksPerFrame: ticksPerFrame, onDone: onDone}
}

// Start rewinds to the first frame and begins playing.
func (a *anim) Start() {
	a.frame = 0
	a.elapsed = 0
	a.running = true
}

// Stop halts playback without firing the completion callback.
func (a *anim) Stop() {
	a.running = false
}

// Advance consumes one simulation tick. On completion the callback runs
// after the animation has already been marked stopped, so a callback that
// restarts the animation behaves sanely.
func (a *anim) Advance() {
	if !a.running {
		return
	}
	a.elapsed++
	if a.elapsed < a.ticksPerFrame {
		return
	}
	a.elapsed = 0
	if a.frame+1 < a.frames {
		a.frame++
		return
	}
	a.running = false
	if a.onDone != nil {
		a.onDone()
	}
}

// Frame returns the current frame index in [0, frames).
func (a *anim) Frame() int {
	return a.frame
}

// Running reports whether the sequence is still playing.
func (a *anim) Running() bool {
	return a.running
}
