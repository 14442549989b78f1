package core

import "time"

// maxTicksPerFrame caps how many simulation steps a single frame may drain
// so a long stall cannot snowball into an ever-growing backlog.
const maxTicksPerFrame = 8

// FixedStep converts elapsed wall time into whole simulation ticks at a
// target ticks-per-second rate, decoupling the sim rate from the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	tps         int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS reports the current target tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Ticks reports how many simulation steps fit into the time elapsed since
// the previous call.
func (f *FixedStep) Ticks() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := 0
	for f.accumulator >= f.step && n < maxTicksPerFrame {
		f.accumulator -= f.step
		n++
	}
	if n == maxTicksPerFrame {
		f.accumulator = 0
	}
	return n
}
