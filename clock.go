package sx1276

import "time"

// clock abstracts wall-clock reads and sleeps so the poll loops in
// TxEngine, RxEngine, CadEngine and the DutyAccount window rotation can be
// driven deterministically in tests, without waiting on real time.
type clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }
