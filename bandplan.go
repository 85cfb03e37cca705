package sx1276

// bandPlanEntry is one regulatory sub-band: a contiguous frequency range
// (already including its guard) plus the caps that apply while the
// carrier sits inside it.
type bandPlanEntry struct {
	lowerHz, upperHz uint32
	powerCeilingDBm  int8
	quotaMs          uint32
	bwCeilingIndex   byte
}

// euBand868 is BANDPLAN_EU868: six contiguous sub-bands between 863 and
// 870 MHz, each with its own power ceiling, hourly duty quota and
// bandwidth ceiling. Edges already include the ±62.5kHz guard.
var euBand868 = []bandPlanEntry{
	{863_062_500, 864_937_500, 14, 3_600, bwIndex125kHz},
	{865_062_500, 867_937_500, 14, 36_000, bwIndex125kHz},
	{868_062_500, 868_537_500, 14, 36_000, bwIndex125kHz},
	{868_762_500, 869_137_500, 14, 3_600, bwIndex125kHz},
	{869_462_500, 869_587_500, 20, 360_000, bwIndex125kHz},
	{869_762_500, 869_937_500, 20, 36_000, bwIndex125kHz},
}

// bwIndex125kHz is the RegModemConfig1 bandwidth-index value for 125kHz,
// the ceiling every EU868 sub-band shares.
const bwIndex125kHz = 7

// bandPlanNoneCaps are the derived caps for BANDPLAN_NONE: a generous
// default that imposes no real regulatory limit, used for bench testing
// and regions with no enforced band plan.
var bandPlanNoneCaps = bandPlanEntry{
	lowerHz:         0,
	upperHz:         1 << 31,
	powerCeilingDBm: 20,
	quotaMs:         1_800_000,
	bwCeilingIndex:  9,
}

// bandPlanProhibited is the sentinel caps set when a frequency under
// BANDPLAN_EU868 falls in a gap between sub-bands: transmit is refused
// unconditionally regardless of any other setting.
var bandPlanProhibited = bandPlanEntry{
	powerCeilingDBm: powerUnset,
	quotaMs:         0,
	bwCeilingIndex:  0,
}

const freqLowerBoundHz = 137_000_000
const freqUpperBoundHz = 1_020_000_000
const lowFrequencyModeGateHz = 525_000_000
const highFrequencyModeGateHz = 779_000_000

// BandPlan resolves regulatory caps for a configured plan and tracks the
// caps currently in force, recomputed as a side effect of every
// frequency write.
type BandPlan struct {
	plan    BandPlanID
	current bandPlanEntry
}

func newBandPlan(plan BandPlanID) *BandPlan {
	b := &BandPlan{plan: plan}
	if plan == BandPlanNone {
		b.current = bandPlanNoneCaps
	} else {
		b.current = bandPlanProhibited
	}
	return b
}

// resolve recomputes the caps in force for freqHz and stores them.
func (b *BandPlan) resolve(freqHz uint32) {
	if b.plan == BandPlanNone {
		b.current = bandPlanNoneCaps
		return
	}
	for _, e := range euBand868 {
		if freqHz >= e.lowerHz && freqHz <= e.upperHz {
			b.current = e
			return
		}
	}
	b.current = bandPlanProhibited
}

// PowerCeilingDBm is the maximum OutputPower permitted at the current
// frequency; powerUnset means transmit is prohibited outright.
func (b *BandPlan) PowerCeilingDBm() int8 { return b.current.powerCeilingDBm }

// BandwidthCeilingIndex is the maximum RegModemConfig1 bandwidth index
// permitted at the current frequency.
func (b *BandPlan) BandwidthCeilingIndex() byte { return b.current.bwCeilingIndex }

// QuotaMs is the rolling-hour transmit airtime budget at the current
// frequency, in milliseconds.
func (b *BandPlan) QuotaMs() uint32 { return b.current.quotaMs }

// Prohibited reports whether the current frequency has no permitted
// sub-band under the configured plan.
func (b *BandPlan) Prohibited() bool { return b.current.powerCeilingDBm <= powerUnset }
