package sx1276

import (
	"errors"
	"testing"
	"time"
)

// staleResetBus simulates a chip that doesn't actually leave Sleep after
// the reset pulse, so the post-reset Standby probe must fail.
type staleResetBus struct {
	*mockBus
}

func (b *staleResetBus) Reset(sleep func(time.Duration)) error {
	b.resetCalls++
	b.regs[regOpMode] = byte(ModeSleep)
	sleep(10 * time.Millisecond)
	sleep(10 * time.Millisecond)
	return nil
}

func TestInitializeReportsResetFailureOnStaleMode(t *testing.T) {
	bus := &staleResetBus{mockBus: newMockBus()}
	d := NewDriverWithClock(bus, newFakeClock())
	err := d.Initialize(PAOutputPABoost, BandPlanEU868)
	if !errors.Is(err, ErrResetFailure) {
		t.Errorf("got %v, want ErrResetFailure", err)
	}
}

func TestInitializeRejectsInvalidArguments(t *testing.T) {
	bus := newMockBus()
	d := NewDriverWithClock(bus, newFakeClock())
	if err := d.Initialize(PAOutput(9), BandPlanNone); err != ErrInvalidArgument {
		t.Errorf("bad pa output: got %v, want ErrInvalidArgument", err)
	}
	if err := d.Initialize(PAOutputRFO, BandPlanID(9)); err != ErrInvalidArgument {
		t.Errorf("bad band plan: got %v, want ErrInvalidArgument", err)
	}
}

func TestInitializeAppliesErrataAndBandPlan(t *testing.T) {
	bus := newMockBus()
	d := NewDriverWithClock(bus, newFakeClock())
	if err := d.Initialize(PAOutputPABoost, BandPlanEU868); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if bus.resetCalls != 1 {
		t.Errorf("resetCalls = %d, want 1", bus.resetCalls)
	}
	if bus.regs[regIfFreq2] != 0x40 || bus.regs[regIfFreq1] != 0x00 {
		t.Error("errata IF-frequency fix not applied")
	}
	mode, err := d.mode.Mode()
	if err != nil || mode != ModeStandby {
		t.Errorf("mode after Initialize = %v (%v), want Standby", mode, err)
	}
	if d.tx.holdMult != 1 {
		t.Errorf("holdMult = %d, want 1 for EU868", d.tx.holdMult)
	}
}

func TestSetPowerDBmClampsToBandPlanCeiling(t *testing.T) {
	d, _, _ := setupDriver(t, BandPlanEU868)
	if _, err := d.SetFrequency(868_300_000); err != nil { // band 48, ceiling 14dBm
		t.Fatalf("SetFrequency: %v", err)
	}
	if err := d.SetPowerDBm(17); err != nil {
		t.Fatalf("SetPowerDBm: %v", err)
	}
	got, err := d.PowerDBm()
	if err != nil {
		t.Fatalf("PowerDBm: %v", err)
	}
	if got != 14 {
		t.Errorf("PowerDBm() = %d, want 14 (clamped to band-plan ceiling)", got)
	}
}

func TestSetPowerDBmClampsToPASelectHardLimit(t *testing.T) {
	d, _, _ := setupDriver(t, BandPlanNone) // ceiling 20dBm, above PA_BOOST's own 17dBm limit
	if err := d.SetPowerDBm(25); err != nil {
		t.Fatalf("SetPowerDBm: %v", err)
	}
	got, err := d.PowerDBm()
	if err != nil {
		t.Fatalf("PowerDBm: %v", err)
	}
	if got != 17 {
		t.Errorf("PowerDBm() = %d, want 17 (clamped to PA_BOOST hard limit)", got)
	}
}

func TestSetBandwidthHzDomain(t *testing.T) {
	d, _, _ := setupDriver(t, BandPlanNone)
	valid := []uint32{7800, 10400, 15600, 20800, 31250, 41700, 62500, 125000, 250000, 500000}
	for _, hz := range valid {
		if err := d.SetBandwidthHz(hz); err != nil {
			t.Errorf("SetBandwidthHz(%d): %v", hz, err)
		}
		got, err := d.BandwidthHz()
		if err != nil || got != hz {
			t.Errorf("BandwidthHz() = %d (%v), want %d", got, err, hz)
		}
	}
	if err := d.SetBandwidthHz(208003); err != ErrInvalidArgument {
		t.Errorf("SetBandwidthHz(208003) = %v, want ErrInvalidArgument", err)
	}
}

func TestChannelActivityDetectReceivesOnDetection(t *testing.T) {
	d, bus, _ := setupDriver(t, BandPlanNone)

	rxBase, _ := d.regs.FifoRxBaseAddr()
	bus.fifo[rxBase] = 'x'
	bus.regs[regRxNbBytes] = 1
	// The first RegIrqFlags read (CAD's CadDetected poll) raises CadDetected;
	// CAD then clears every flag before receiving, so Rx-done has to arrive
	// on the second read, the receive loop's first RxDone poll.
	bus.rxDoneAfter = 2
	bus.cadDetectedAfter = 1

	buf := make([]byte, 4)
	n, err := d.ChannelActivityDetect(buf, 50)
	if err != nil {
		t.Fatalf("ChannelActivityDetect: %v", err)
	}
	if n != 1 || buf[0] != 'x' {
		t.Errorf("got %q (n=%d), want \"x\" (n=1)", buf[:n], n)
	}
}
