package sx1276

import "testing"

func setupDriver(t *testing.T, bandPlan BandPlanID) (*Driver, *mockBus, *fakeClock) {
	t.Helper()
	bus := newMockBus()
	clk := newFakeClock()
	d := NewDriverWithClock(bus, clk)
	if err := d.Initialize(PAOutputPABoost, bandPlan); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return d, bus, clk
}

func TestTransmitHelloWorld(t *testing.T) {
	d, bus, _ := setupDriver(t, BandPlanNone)
	if _, err := d.SetFrequency(868_000_000); err != nil {
		t.Fatalf("SetFrequency: %v", err)
	}
	if err := d.SetSpreadingFactor(7); err != nil {
		t.Fatalf("SetSpreadingFactor: %v", err)
	}
	bus.txDoneAfter = 2

	airtime, err := d.Transmit([]byte{0x68, 0x69})
	if err != nil {
		t.Fatalf("Transmit: %v", err)
	}
	if airtime == 0 {
		t.Error("airtime should be positive")
	}
	txBase := bus.regs[regFifoTxBaseAddr]
	if bus.fifo[txBase] != 0x68 || bus.fifo[txBase+1] != 0x69 {
		t.Errorf("fifo at tx base = %#x %#x, want 0x68 0x69", bus.fifo[txBase], bus.fifo[txBase+1])
	}
}

func TestTransmitInputTooLong(t *testing.T) {
	d, _, _ := setupDriver(t, BandPlanNone)
	if _, err := d.Transmit(nil); err != ErrInputTooLong {
		t.Errorf("empty payload: got %v, want ErrInputTooLong", err)
	}
	big := make([]byte, 256)
	if _, err := d.Transmit(big); err != ErrInputTooLong {
		t.Errorf("256-byte payload: got %v, want ErrInputTooLong", err)
	}
}

func TestTransmitOutOfBandGuardGap(t *testing.T) {
	d, bus, _ := setupDriver(t, BandPlanEU868)
	// 868_000_000 sits in the guard gap between sub-bands 47 and 48.
	if _, err := d.SetFrequency(868_000_000); err != nil {
		t.Fatalf("SetFrequency: %v", err)
	}
	bus.txDoneAfter = 1
	if _, err := d.Transmit([]byte("hi")); err != ErrOutOfBand {
		t.Errorf("got %v, want ErrOutOfBand", err)
	}
}

func TestTransmitBandwidthDisallowed(t *testing.T) {
	d, bus, _ := setupDriver(t, BandPlanEU868)
	if _, err := d.SetFrequency(869_500_000); err != nil {
		t.Fatalf("SetFrequency: %v", err)
	}
	if err := d.SetBandwidthHz(250_000); err != nil {
		t.Fatalf("SetBandwidthHz: %v", err)
	}
	bus.txDoneAfter = 1
	if _, err := d.Transmit([]byte("hi")); err != ErrBandwidthDisallowed {
		t.Errorf("got %v, want ErrBandwidthDisallowed", err)
	}
}

func TestTransmitQuotaRefusal(t *testing.T) {
	d, bus, _ := setupDriver(t, BandPlanEU868)
	if _, err := d.SetFrequency(868_300_000); err != nil { // band 48, quota 36000ms
		t.Fatalf("SetFrequency: %v", err)
	}
	d.duty.windowMs[0] = 36_000 // window already at quota
	bus.txDoneAfter = 1
	if _, err := d.Transmit([]byte("x")); err != ErrQuotaExceeded {
		t.Errorf("got %v, want ErrQuotaExceeded", err)
	}
}

func TestTransmitUnderQuotaSucceeds(t *testing.T) {
	d, bus, _ := setupDriver(t, BandPlanEU868)
	if _, err := d.SetFrequency(868_300_000); err != nil { // band 48, quota 36000ms
		t.Fatalf("SetFrequency: %v", err)
	}
	d.duty.windowMs[0] = 35_999 // one millisecond under quota
	bus.txDoneAfter = 1
	if _, err := d.Transmit([]byte("x")); err != nil {
		t.Errorf("got %v, want success", err)
	}
}

func TestTransmitPostHold(t *testing.T) {
	d, bus, clk := setupDriver(t, BandPlanEU868)
	if _, err := d.SetFrequency(869_500_000); err != nil { // band 54, holdMult 1
		t.Fatalf("SetFrequency: %v", err)
	}
	bus.txDoneAfter = 1
	if _, err := d.Transmit([]byte("x")); err != nil {
		t.Fatalf("first transmit: %v", err)
	}
	// Force the observed airtime to exactly 500ms for a deterministic hold.
	d.tx.holdUntilMs = clk.Now().UnixMilli() + 500

	clk.advance(499_000_000) // 499ms in nanoseconds
	bus.txDoneAfter = 1
	if _, err := d.Transmit([]byte("y")); err != ErrHoldoffActive {
		t.Errorf("at 499ms: got %v, want ErrHoldoffActive", err)
	}
	clk.advance(2_000_000) // +2ms => 501ms total
	bus.txDoneAfter = 1
	if _, err := d.Transmit([]byte("y")); err != nil {
		t.Errorf("at 501ms: got %v, want success", err)
	}
}
