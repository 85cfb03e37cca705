package sx1276

// DutyAccount tracks transmit airtime in a coarse sliding window of ten
// 360-second buckets, mirroring the firmware's own TxTimer accounting
// exactly, including its caveat: the window reference is an absolute
// clock reading with no wraparound handling, so a clock that wraps (or a
// fake clock driven backwards in tests) produces undefined bucket
// rotation. This is inherited, not fixed.
type DutyAccount struct {
	windowMs [dutySlots]uint32
	windowRef int64 // milliseconds, clock.Now() at slot 0's opening edge
	quotaMs   uint32
	clk       clock
}

func newDutyAccount(quotaMs uint32, clk clock) *DutyAccount {
	return &DutyAccount{
		windowRef: clk.Now().UnixMilli(),
		quotaMs:   quotaMs,
		clk:       clk,
	}
}

// setQuota updates the rolling quota without disturbing accumulated
// airtime, used when a frequency write moves to a sub-band with a
// different hourly budget.
func (d *DutyAccount) setQuota(quotaMs uint32) { d.quotaMs = quotaMs }

// rotate shifts buckets older than one slot width off the window,
// advancing windowRef by however many whole slots have elapsed.
func (d *DutyAccount) rotate(nowMs int64) {
	offset := nowMs - d.windowRef
	if offset <= 0 {
		return
	}
	shift := offset/dutySlotMs + 1
	for shift > 1 {
		for i := dutySlots - 1; i > 0; i-- {
			d.windowMs[i] = d.windowMs[i-1]
		}
		d.windowMs[0] = 0
		d.windowRef += dutySlotMs
		shift--
	}
}

func (d *DutyAccount) total() uint32 {
	var sum uint32
	for _, v := range d.windowMs {
		sum += v
	}
	return sum
}

// Check reports whether the rolling total plus airtimeMs stays below the
// quota (reaching the quota is refused), without mutating any state. TxEngine calls this before
// committing to a transmission, so a refusal never leaves a partial
// charge behind.
func (d *DutyAccount) Check(airtimeMs uint32) error {
	now := d.clk.Now().UnixMilli()
	saved := *d
	d.rotate(now)
	projected := d.total() + airtimeMs
	*d = saved
	if projected >= d.quotaMs {
		return ErrQuotaExceeded
	}
	return nil
}

// Charge rotates the window forward to the current time, adds airtimeMs
// to the newest bucket, and returns the new rolling-hour total. It does
// not itself refuse on quota overrun; callers are expected to have
// called Check first.
func (d *DutyAccount) Charge(airtimeMs uint32) uint32 {
	now := d.clk.Now().UnixMilli()
	d.rotate(now)
	d.windowMs[0] += airtimeMs
	return d.total()
}
