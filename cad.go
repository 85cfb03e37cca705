package sx1276

// CadEngine drives channel-activity detection: enter Cad from Standby,
// re-enter Cad on each Cad-done interrupt with nothing detected until the
// deadline passes, and on CadDetected attempt to receive the packet that
// triggered it.
type CadEngine struct {
	regs *RegisterMap
	mode *ModeMachine
	rx   *RxEngine
}

func newCadEngine(regs *RegisterMap, mode *ModeMachine, rx *RxEngine) *CadEngine {
	return &CadEngine{regs: regs, mode: mode, rx: rx}
}

// ChannelActivityDetect polls for up to timeoutMs for a detected channel
// activity, then attempts a short receive of whatever triggered it. It
// returns 0, nil if nothing is detected before the deadline.
func (c *CadEngine) ChannelActivityDetect(buf []byte, timeoutMs uint32) (int, error) {
	if err := c.mode.Standby(); err != nil {
		return 0, err
	}
	if _, err := c.regs.ClearIrqFlags(); err != nil {
		return 0, err
	}
	if err := c.mode.SetMode(ModeChannelActivityDetect); err != nil {
		return 0, err
	}
	defer func() {
		c.regs.ClearIrqFlags()
		c.mode.Standby()
	}()

	start := c.rx.clk.Now()
	for {
		detected, err := c.regs.CadDetected()
		if err != nil {
			return 0, err
		}
		if detected != 0 {
			if _, err := c.regs.ClearIrqFlags(); err != nil {
				return 0, err
			}
			return c.rx.ReceiveContinuous(buf, 200)
		}
		done, err := c.regs.CadDone()
		if err != nil {
			return 0, err
		}
		if done != 0 {
			// Self-retrigger: clear only the Cad-done flag and re-enter Cad,
			// matching the firmware's own retrigger-without-full-clear.
			if _, err := c.regs.SetCadDone(1); err != nil {
				return 0, err
			}
			if err := c.mode.SetMode(ModeChannelActivityDetect); err != nil {
				return 0, err
			}
		}
		elapsed := c.rx.clk.Now().Sub(start).Milliseconds()
		if elapsed >= int64(timeoutMs) {
			return 0, nil
		}
		c.rx.clk.Sleep(cadPollInterval)
	}
}
