package sx1276

import "fmt"

// ModeMachine tracks and transitions the device's operating mode. Every
// engine (TxEngine, RxEngine, CadEngine) brackets its work between a
// Standby entry and a Standby exit, matching the original firmware's own
// bracketing discipline rather than leaving the radio parked in whatever
// mode the last operation left it in.
type ModeMachine struct {
	regs *RegisterMap
}

func newModeMachine(regs *RegisterMap) *ModeMachine {
	return &ModeMachine{regs: regs}
}

// SetMode writes the 3-bit mode field and unconditionally re-asserts
// LongRangeMode, since every operation on this chip is defined only in
// LoRa mode and nothing in this package ever drops into FSK mode.
func (m *ModeMachine) SetMode(mode Mode) error {
	if _, err := m.regs.SetLongRangeMode(1); err != nil {
		return fmt.Errorf("sx1276: set long range mode: %w", err)
	}
	if _, err := m.regs.SetModeField(byte(mode)); err != nil {
		return fmt.Errorf("sx1276: set mode %#x: %w", byte(mode), err)
	}
	return nil
}

// Mode reads back the current 3-bit mode field.
func (m *ModeMachine) Mode() (Mode, error) {
	v, err := m.regs.ModeField()
	if err != nil {
		return 0, err
	}
	return Mode(v), nil
}

// Standby is the bracket every engine enters and leaves through.
func (m *ModeMachine) Standby() error { return m.SetMode(ModeStandby) }

// probeStandby reads back the mode left by the hardware reset pulse,
// with no write of its own, and confirms it is Standby. A chip that
// comes up in some other mode, or a bus that silently drops reads, is
// reported as ErrResetFailure rather than surfacing as a mysterious
// failure several calls later.
func (m *ModeMachine) probeStandby() error {
	got, err := m.Mode()
	if err != nil {
		return err
	}
	if got != ModeStandby {
		return fmt.Errorf("%w: read back mode %#x", ErrResetFailure, byte(got))
	}
	return nil
}
