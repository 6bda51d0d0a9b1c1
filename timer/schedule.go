package timer

import "time"

// Handle identifies a repeating callback registered with a Scheduler.
type Handle uint64

// Scheduler invokes callbacks periodically on the engine's control thread.
type Scheduler interface {
	// Every arranges for fn to run once per interval until cancelled
	Every(interval time.Duration, fn func()) Handle
	// Cancel stops a previously scheduled callback. Cancelling an unknown or
	// already cancelled handle does nothing
	Cancel(h Handle)
}

// ticking owns the engine's only repeating schedule. Arming always cancels
// the previous handle first, so two schedules never overlap.
type ticking struct {
	sched  Scheduler
	handle Handle
	active bool
}

func (tk *ticking) arm(interval time.Duration, fn func()) {
	tk.disarm()

	tk.handle = tk.sched.Every(interval, fn)
	tk.active = true
}

func (tk *ticking) disarm() {
	if !tk.active {
		return
	}

	tk.sched.Cancel(tk.handle)
	tk.active = false
}
