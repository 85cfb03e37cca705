package sx1276

import (
	"fmt"
	"time"
)

// bwTable maps RegModemConfig1 bandwidth-index values to their Hz
// equivalents, in register order.
var bwTable = [10]uint32{7_800, 10_400, 15_600, 20_800, 31_250, 41_700, 62_500, 125_000, 250_000, 500_000}

// Driver is the top-level handle for one SX1276 radio: it owns the bus,
// the register map built on top of it, the mode state machine, the
// band-plan caps, the duty-cycle accountant, and the Tx/Rx/Cad engines
// built from all of the above.
type Driver struct {
	bus   Bus
	codec *FieldCodec
	regs  *RegisterMap
	mode  *ModeMachine
	band  *BandPlan
	duty  *DutyAccount
	tx    *TxEngine
	rx    *RxEngine
	cad   *CadEngine
	clk   clock

	bandPlan BandPlanID
	freqHz   uint32

	trace *traceSink
}

// NewDriver wires a Bus into a complete driver instance. The device is
// left unconfigured; call Initialize before issuing any other command.
func NewDriver(bus Bus) *Driver {
	return NewDriverWithClock(bus, realClock{})
}

// NewDriverWithClock is NewDriver with an injected clock, for
// deterministic tests of the duty-cycle and timeout logic.
func NewDriverWithClock(bus Bus, clk clock) *Driver {
	codec := newFieldCodec(bus)
	regs := newRegisterMap(codec)
	mode := newModeMachine(regs)
	band := newBandPlan(BandPlanNone)
	duty := newDutyAccount(band.QuotaMs(), clk)
	rx := newRxEngine(regs, mode, clk)
	d := &Driver{
		bus:   bus,
		codec: codec,
		regs:  regs,
		mode:  mode,
		band:  band,
		duty:  duty,
		rx:    rx,
		cad:   newCadEngine(regs, mode, rx),
		clk:   clk,
	}
	d.tx = newTxEngine(regs, mode, band, duty, clk)
	return d
}

// Initialize resets the device, applies the errata register writes
// required before LoRa mode is usable, selects the power-amplifier
// output pin, and applies the named band plan.
func (d *Driver) Initialize(paOutput PAOutput, bandPlan BandPlanID) error {
	if paOutput != PAOutputRFO && paOutput != PAOutputPABoost {
		return ErrInvalidArgument
	}
	if bandPlan != BandPlanNone && bandPlan != BandPlanEU868 {
		return ErrInvalidArgument
	}
	d.trace.printf("initialize: paOutput=%d bandPlan=%d", paOutput, bandPlan)
	if err := d.bus.Reset(func(dur time.Duration) { d.clk.Sleep(dur) }); err != nil {
		return fmt.Errorf("%w: %v", ErrResetFailure, err)
	}
	if err := d.mode.probeStandby(); err != nil {
		return err
	}
	if err := d.mode.SetMode(ModeSleep); err != nil {
		return err
	}

	// Errata fixes applied once, in LoRa mode, from Sleep, matching the
	// firmware's own initialization order.
	if _, err := d.regs.SetAutomaticIFOn(0); err != nil {
		return err
	}
	if _, err := d.regs.SetIfFreq2(0x40); err != nil {
		return err
	}
	if _, err := d.regs.SetIfFreq1(0x00); err != nil {
		return err
	}
	if err := d.mode.Standby(); err != nil {
		return err
	}
	if _, err := d.regs.SetPaSelect(byte(paOutput)); err != nil {
		return err
	}

	d.bandPlan = bandPlan
	d.band = newBandPlan(bandPlan)
	d.tx.band = d.band
	switch bandPlan {
	case BandPlanNone:
		d.tx.setHoldoffMultiplier(0)
		if _, err := d.SetFrequency(869_500_000); err != nil {
			return err
		}
	case BandPlanEU868:
		d.tx.setHoldoffMultiplier(1)
		if _, err := d.SetFrequency(869_500_000); err != nil {
			return err
		}
	}
	d.duty.setQuota(d.band.QuotaMs())
	return nil
}

// Frequency returns the current carrier frequency in Hz, read back from
// the 24-bit frequency word (F_rf * 61035 / 1000, the scaling inverted).
func (d *Driver) Frequency() (uint32, error) {
	frf, err := d.regs.Frf()
	if err != nil {
		return 0, err
	}
	return uint32(uint64(frf) * 61035 / 1000), nil
}

// SetFrequency writes a new carrier frequency: it validates range,
// resolves the new band-plan sub-band and its derived caps, writes the
// 24-bit frequency word, and sets the low-frequency-mode bit according
// to the documented hysteresis gap.
func (d *Driver) SetFrequency(hz uint32) (uint32, error) {
	if hz < freqLowerBoundHz || hz > freqUpperBoundHz {
		return 0, ErrOutOfRange
	}
	d.band.resolve(hz)
	d.duty.setQuota(d.band.QuotaMs())

	// round(hz / 61.035), on the same 61035/1000 constant Frequency() uses
	// to convert back, so a read immediately after a write round-trips to
	// within half a step.
	frf := uint32((uint64(hz)*1000 + 30517) / 61035)
	prev, err := d.regs.SetFrf(frf)
	if err != nil {
		return 0, err
	}
	switch {
	case hz < lowFrequencyModeGateHz:
		if _, err := d.regs.SetLowFrequencyModeOn(1); err != nil {
			return 0, err
		}
	case hz > highFrequencyModeGateHz:
		if _, err := d.regs.SetLowFrequencyModeOn(0); err != nil {
			return 0, err
		}
	}
	d.freqHz = hz
	return uint32(uint64(prev) * 61035 / 1000), nil
}

// PowerDBm returns the current output power in dBm, accounting for
// which PA output pin is selected.
func (d *Driver) PowerDBm() (int8, error) {
	sel, err := d.regs.PaSelect()
	if err != nil {
		return 0, err
	}
	out, err := d.regs.OutputPower()
	if err != nil {
		return 0, err
	}
	if sel != 0 {
		return int8(17 - (15 - int(out))), nil
	}
	maxPower, err := d.regs.MaxPower()
	if err != nil {
		return 0, err
	}
	maxDbm := 10.8 + 0.6*float64(maxPower)
	return int8(maxDbm - float64(15-int(out))), nil
}

// SetPowerDBm sets the output power, clamped to the band-plan ceiling
// and to the selected PA output's own valid range ([2,17] for PA_BOOST,
// [-3,14] for RFO). It leaves PaDac unchanged; no setting above 17dBm
// is made.
func (d *Driver) SetPowerDBm(dbm int8) error {
	ceiling := d.band.PowerCeilingDBm()
	if ceiling != powerUnset && dbm > ceiling {
		dbm = ceiling
	}
	sel, err := d.regs.PaSelect()
	if err != nil {
		return err
	}
	if sel != 0 {
		if dbm < 2 {
			dbm = 2
		} else if dbm > 17 {
			dbm = 17
		}
		_, err := d.regs.SetOutputPower(byte(15 - (17 - dbm)))
		return err
	}
	if dbm < -3 {
		dbm = -3
	} else if dbm > 14 {
		dbm = 14
	}
	if dbm < 0 {
		if _, err := d.regs.SetMaxPower(2); err != nil {
			return err
		}
		_, err := d.regs.SetOutputPower(byte(dbm + 3))
		return err
	}
	if _, err := d.regs.SetMaxPower(7); err != nil {
		return err
	}
	_, err = d.regs.SetOutputPower(byte(dbm))
	return err
}

// BandwidthHz returns the current signal bandwidth in Hz.
func (d *Driver) BandwidthHz() (uint32, error) {
	idx, err := d.regs.BandwidthIndex()
	if err != nil {
		return 0, err
	}
	if int(idx) >= len(bwTable) {
		return 0, fmt.Errorf("sx1276: bandwidth index %d out of table", idx)
	}
	return bwTable[idx], nil
}

// SetBandwidthHz accepts exactly the chip's ten defined bandwidths.
// The firmware this package is modeled on recognizes 208003 where
// 20800 was plainly intended; this setter accepts only the documented
// correct value, since the external bandwidth domain is specified
// exactly as the chip's real ten values.
func (d *Driver) SetBandwidthHz(hz uint32) error {
	for idx, v := range bwTable {
		if v == hz {
			_, err := d.regs.SetBandwidthIndex(byte(idx))
			return err
		}
	}
	return ErrInvalidArgument
}

// SpreadingFactor returns the configured spreading factor (6..12).
func (d *Driver) SpreadingFactor() (byte, error) { return d.regs.SpreadingFactor() }

// SetSpreadingFactor sets the spreading factor, rejecting values
// outside the chip's supported 6..12 range.
func (d *Driver) SetSpreadingFactor(sf byte) error {
	if sf < 6 || sf > 12 {
		return ErrInvalidArgument
	}
	_, err := d.regs.SetSpreadingFactor(sf)
	return err
}

// CodingRate returns the configured error-coding rate index (1..4).
func (d *Driver) CodingRate() (byte, error) { return d.regs.CodingRateIndex() }

// SetCodingRate sets the error-coding rate index.
func (d *Driver) SetCodingRate(cr byte) error {
	if cr < 1 || cr > 4 {
		return ErrInvalidArgument
	}
	_, err := d.regs.SetCodingRateIndex(cr)
	return err
}

// ImplicitHeaderMode reports whether implicit-header mode is enabled.
func (d *Driver) ImplicitHeaderMode() (bool, error) {
	v, err := d.regs.ImplicitHeaderModeOn()
	return v != 0, err
}

// SetImplicitHeaderMode toggles implicit-header mode.
func (d *Driver) SetImplicitHeaderMode(on bool) error {
	_, err := d.regs.SetImplicitHeaderModeOn(boolToByte(on))
	return err
}

// SyncWord returns the configured network sync byte.
func (d *Driver) SyncWord() (byte, error) { return d.regs.SyncWord() }

// SetSyncWord sets the network sync byte (0x34 denotes the public
// long-range wide-area network).
func (d *Driver) SetSyncWord(v byte) error {
	_, err := d.regs.SetSyncWord(v)
	return err
}

// PreambleLength returns the configured preamble length in symbols.
func (d *Driver) PreambleLength() (uint16, error) { return d.regs.PreambleLength() }

// SetPreambleLength sets the preamble length in symbols.
func (d *Driver) SetPreambleLength(v uint16) error {
	_, err := d.regs.SetPreambleLength(v)
	return err
}

// PayloadCrcOn reports whether payload CRC generation/checking is on.
func (d *Driver) PayloadCrcOn() (bool, error) {
	v, err := d.regs.RxPayloadCrcOn()
	return v != 0, err
}

// SetPayloadCrcOn toggles payload CRC generation/checking.
func (d *Driver) SetPayloadCrcOn(on bool) error {
	_, err := d.regs.SetRxPayloadCrcOn(boolToByte(on))
	return err
}

// Transmit sends data and returns the observed airtime in milliseconds,
// gated by the current band-plan caps, duty quota, and post-hold.
func (d *Driver) Transmit(data []byte) (uint32, error) {
	airtime, err := d.tx.Transmit(data)
	if err != nil {
		d.trace.printf("transmit: %d bytes failed: %v", len(data), err)
		return 0, err
	}
	d.trace.printf("transmit: %d bytes, airtime %dms", len(data), airtime)
	return airtime, nil
}

// ReceiveContinuous polls for one packet for up to timeoutMs
// milliseconds, copying it into buf.
func (d *Driver) ReceiveContinuous(buf []byte, timeoutMs uint32) (int, error) {
	return d.rx.ReceiveContinuous(buf, timeoutMs)
}

// ChannelActivityDetect polls for channel activity for up to timeoutMs
// milliseconds and attempts to receive whatever triggered it.
func (d *Driver) ChannelActivityDetect(buf []byte, timeoutMs uint32) (int, error) {
	return d.cad.ChannelActivityDetect(buf, timeoutMs)
}

// BandPlan exposes the current band-plan caps for callers that want to
// inspect them without triggering a frequency write.
func (d *Driver) BandPlan() *BandPlan { return d.band }
