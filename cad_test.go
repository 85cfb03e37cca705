package sx1276

import "testing"

func TestChannelActivityDetectTimeout(t *testing.T) {
	bus := newMockBus()
	clk := newFakeClock()
	regs := newRegisterMap(newFieldCodec(bus))
	mode := newModeMachine(regs)
	rx := newRxEngine(regs, mode, clk)
	cad := newCadEngine(regs, mode, rx)

	n, err := cad.ChannelActivityDetect(make([]byte, 8), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("n = %d, want 0 on timeout", n)
	}
}

func TestChannelActivityDetectSelfRetrigger(t *testing.T) {
	bus := newMockBus()
	clk := newFakeClock()
	regs := newRegisterMap(newFieldCodec(bus))
	mode := newModeMachine(regs)
	rx := newRxEngine(regs, mode, clk)
	cad := newCadEngine(regs, mode, rx)

	// CadDone fires once with nothing detected, then the deadline expires
	// on the retriggered round.
	bus.cadDoneAfter = 1
	n, err := cad.ChannelActivityDetect(make([]byte, 8), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("n = %d, want 0", n)
	}
}
