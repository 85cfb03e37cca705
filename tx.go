package sx1276

import (
	"fmt"
	"time"
)

// TxEngine drives a single transmission: preflight gating against the
// current band-plan caps and duty quota, payload staging through the
// FIFO, and polling the Tx-done flag.
type TxEngine struct {
	regs        *RegisterMap
	mode        *ModeMachine
	band        *BandPlan
	duty        *DutyAccount
	clk         clock
	holdMult    uint32
	holdUntilMs int64
}

func newTxEngine(regs *RegisterMap, mode *ModeMachine, band *BandPlan, duty *DutyAccount, clk clock) *TxEngine {
	return &TxEngine{regs: regs, mode: mode, band: band, duty: duty, clk: clk}
}

// setHoldoffMultiplier configures the post-transmit quiet hold applied
// as holdMult * observed-airtime. BANDPLAN_EU868 uses 1; BANDPLAN_NONE
// uses 0 (no hold).
func (t *TxEngine) setHoldoffMultiplier(m uint32) { t.holdMult = m }

// Transmit sends data, gated by the current band-plan caps and duty
// quota, and returns the observed airtime in milliseconds.
func (t *TxEngine) Transmit(data []byte) (uint32, error) {
	if len(data) == 0 || len(data) > maxPayloadBytes {
		return 0, ErrInputTooLong
	}
	if t.band.Prohibited() {
		return 0, ErrOutOfBand
	}
	bwIdx, err := t.regs.BandwidthIndex()
	if err != nil {
		return 0, err
	}
	if bwIdx > t.band.BandwidthCeilingIndex() {
		return 0, ErrBandwidthDisallowed
	}
	now := t.clk.Now().UnixMilli()
	if now < t.holdUntilMs {
		return 0, ErrHoldoffActive
	}
	if err := t.duty.Check(0); err != nil {
		return 0, err
	}

	savedPower, err := t.regs.OutputPower()
	if err != nil {
		return 0, err
	}
	ceiling := t.band.PowerCeilingDBm()
	if ceiling >= 0 && byte(ceiling) < savedPower {
		if _, err := t.regs.SetOutputPower(byte(ceiling)); err != nil {
			return 0, err
		}
	}
	restorePower := func() {
		t.regs.SetOutputPower(savedPower)
	}

	airtime, txErr := t.transmitPayload(data)
	restorePower()
	if txErr != nil {
		return 0, txErr
	}

	t.duty.Charge(airtime)
	t.holdUntilMs = t.clk.Now().UnixMilli() + int64(airtime)*int64(t.holdMult)
	return airtime, nil
}

func (t *TxEngine) transmitPayload(data []byte) (uint32, error) {
	if err := t.mode.Standby(); err != nil {
		return 0, err
	}
	if _, err := t.regs.SetPayloadLength(byte(len(data))); err != nil {
		return 0, err
	}
	txBase, err := t.regs.FifoTxBaseAddr()
	if err != nil {
		return 0, err
	}
	if _, err := t.regs.SetFifoAddrPtr(txBase); err != nil {
		return 0, err
	}
	for _, b := range data {
		if _, err := t.regs.SetFifo(b); err != nil {
			return 0, err
		}
	}
	if _, err := t.regs.ClearIrqFlags(); err != nil {
		return 0, err
	}

	start := t.clk.Now()
	if err := t.mode.SetMode(ModeTransmit); err != nil {
		return 0, err
	}
	for {
		done, err := t.regs.TxDone()
		if err != nil {
			return 0, err
		}
		if done != 0 {
			break
		}
		elapsed := t.clk.Now().Sub(start).Milliseconds()
		if elapsed >= TimeoutDefault {
			t.mode.Standby()
			return 0, fmt.Errorf("%w: transmit", ErrTimeout)
		}
		t.clk.Sleep(pollInterval)
	}
	airtime := uint32(t.clk.Now().Sub(start).Milliseconds())

	if _, err := t.regs.SetTxDone(1); err != nil {
		return 0, err
	}
	if err := t.mode.Standby(); err != nil {
		return 0, err
	}
	return airtime, nil
}

// pollInterval is the nap between Tx-done polls, matching the
// firmware's own 10ms transmit poll.
const pollInterval = 10 * time.Millisecond

// cadPollInterval is the shorter nap used by RxEngine and CadEngine,
// matching the firmware's 3ms poll in those loops.
const cadPollInterval = 3 * time.Millisecond
