package sx1276

// RxEngine drives continuous-receive polling: enter RxContinuous from
// Standby, poll for the Rx-done flag (extending the deadline once a
// signal is detected), and copy the received packet out of the FIFO.
type RxEngine struct {
	regs *RegisterMap
	mode *ModeMachine
	clk  clock
}

func newRxEngine(regs *RegisterMap, mode *ModeMachine, clk clock) *RxEngine {
	return &RxEngine{regs: regs, mode: mode, clk: clk}
}

// signalExtendMs is how much the receive deadline is pushed out once the
// modem reports a signal detected, giving an in-flight symbol time to
// finish arriving before the poll loop gives up.
const signalExtendMs = 4

// ReceiveContinuous polls for one packet for up to timeoutMs milliseconds
// and copies it into buf. It returns 0, nil on a plain timeout (no
// packet arrived) and ErrBufferOverflow if the received packet is
// larger than buf, after copying as much as fits.
func (r *RxEngine) ReceiveContinuous(buf []byte, timeoutMs uint32) (int, error) {
	if err := r.mode.Standby(); err != nil {
		return 0, err
	}
	rxBase, err := r.regs.FifoRxBaseAddr()
	if err != nil {
		return 0, err
	}
	if _, err := r.regs.SetFifoAddrPtr(rxBase); err != nil {
		return 0, err
	}
	if _, err := r.regs.ClearIrqFlags(); err != nil {
		return 0, err
	}
	if err := r.mode.SetMode(ModeContinuousReceive); err != nil {
		return 0, err
	}
	defer r.mode.Standby()

	start := r.clk.Now()
	deadlineMs := int64(timeoutMs)
	for {
		done, err := r.regs.RxDone()
		if err != nil {
			return 0, err
		}
		if done != 0 {
			break
		}
		elapsed := r.clk.Now().Sub(start).Milliseconds()
		if timeoutMs != 0 && elapsed >= deadlineMs {
			return 0, nil
		}
		// ModemStatus bit 0 is "signal detected". The firmware's own check
		// reads `ModemStatus() & 1 == 1`, which C++ operator precedence
		// parses as `ModemStatus() & (1 == 1)`; since `1 == 1` is 1, that is
		// `ModemStatus() & 1`, the same bit-0 test made here.
		status, err := r.regs.ModemStatus()
		if err != nil {
			return 0, err
		}
		if status&boolToByte(true) != 0 {
			deadlineMs += signalExtendMs
		}
		r.clk.Sleep(cadPollInterval)
	}

	rxAddr, err := r.regs.FifoRxCurrentAddr()
	if err != nil {
		return 0, err
	}
	if _, err := r.regs.SetFifoAddrPtr(rxAddr); err != nil {
		return 0, err
	}

	n, err := r.regs.RxNbBytes()
	if err != nil {
		return 0, err
	}
	count := int(n)
	if count > len(buf) {
		for i := 0; i < len(buf); i++ {
			b, err := r.regs.Fifo()
			if err != nil {
				return i, err
			}
			buf[i] = b
		}
		return len(buf), ErrBufferOverflow
	}
	for i := 0; i < count; i++ {
		b, err := r.regs.Fifo()
		if err != nil {
			return i, err
		}
		buf[i] = b
	}
	return count, nil
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
