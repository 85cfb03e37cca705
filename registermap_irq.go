package sx1276

// --- interrupt mask byte ---

func (r *RegisterMap) RxTimeoutMask() (byte, error) { return r.codec.ReadField(fieldRxTimeoutMask) }
func (r *RegisterMap) SetRxTimeoutMask(v byte) (byte, error) {
	return r.codec.WriteField(fieldRxTimeoutMask, v)
}

func (r *RegisterMap) RxDoneMask() (byte, error) { return r.codec.ReadField(fieldRxDoneMask) }
func (r *RegisterMap) SetRxDoneMask(v byte) (byte, error) {
	return r.codec.WriteField(fieldRxDoneMask, v)
}

func (r *RegisterMap) PayloadCrcErrorMask() (byte, error) {
	return r.codec.ReadField(fieldPayloadCrcErrorMask)
}
func (r *RegisterMap) SetPayloadCrcErrorMask(v byte) (byte, error) {
	return r.codec.WriteField(fieldPayloadCrcErrorMask, v)
}

func (r *RegisterMap) ValidHeaderMask() (byte, error) { return r.codec.ReadField(fieldValidHeaderMask) }
func (r *RegisterMap) SetValidHeaderMask(v byte) (byte, error) {
	return r.codec.WriteField(fieldValidHeaderMask, v)
}

func (r *RegisterMap) TxDoneMask() (byte, error) { return r.codec.ReadField(fieldTxDoneMask) }
func (r *RegisterMap) SetTxDoneMask(v byte) (byte, error) {
	return r.codec.WriteField(fieldTxDoneMask, v)
}

func (r *RegisterMap) CadDoneMask() (byte, error) { return r.codec.ReadField(fieldCadDoneMask) }

// SetCadDoneMask preserves the original source's own typo: it writes this
// field with shift 20 instead of 2. Shifting a byte by 20 yields zero, so
// RegIrqFlagsMask is written back unchanged and the returned previous
// value is always 0; this setter is, in effect, a no-op on the documented
// field. Flagged here rather than silently corrected,
// per the design notes' "faithful bug vs fixed bug" open question.
func (r *RegisterMap) SetCadDoneMask(v byte) (byte, error) {
	return r.codec.WriteField(Field{regIrqFlagsMask, 1, 20}, v)
}

func (r *RegisterMap) FhssChangeChannelMask() (byte, error) {
	return r.codec.ReadField(fieldFhssChangeChannelMask)
}
func (r *RegisterMap) SetFhssChangeChannelMask(v byte) (byte, error) {
	return r.codec.WriteField(fieldFhssChangeChannelMask, v)
}

func (r *RegisterMap) CadDetectedMask() (byte, error) { return r.codec.ReadField(fieldCadDetectedMask) }
func (r *RegisterMap) SetCadDetectedMask(v byte) (byte, error) {
	return r.codec.WriteField(fieldCadDetectedMask, v)
}

// --- interrupt flag byte ---

func (r *RegisterMap) RxTimeout() (byte, error) { return r.codec.ReadField(fieldRxTimeout) }
func (r *RegisterMap) SetRxTimeout(v byte) (byte, error) {
	return r.codec.WriteField(fieldRxTimeout, v)
}

func (r *RegisterMap) RxDone() (byte, error) { return r.codec.ReadField(fieldRxDone) }
func (r *RegisterMap) SetRxDone(v byte) (byte, error) {
	return r.codec.WriteField(fieldRxDone, v)
}

func (r *RegisterMap) PayloadCrcError() (byte, error) { return r.codec.ReadField(fieldPayloadCrcError) }
func (r *RegisterMap) SetPayloadCrcError(v byte) (byte, error) {
	return r.codec.WriteField(fieldPayloadCrcError, v)
}

func (r *RegisterMap) ValidHeader() (byte, error) { return r.codec.ReadField(fieldValidHeader) }
func (r *RegisterMap) SetValidHeader(v byte) (byte, error) {
	return r.codec.WriteField(fieldValidHeader, v)
}

func (r *RegisterMap) TxDone() (byte, error) { return r.codec.ReadField(fieldTxDone) }
func (r *RegisterMap) SetTxDone(v byte) (byte, error) {
	return r.codec.WriteField(fieldTxDone, v)
}

func (r *RegisterMap) CadDone() (byte, error) { return r.codec.ReadField(fieldCadDone) }
func (r *RegisterMap) SetCadDone(v byte) (byte, error) {
	return r.codec.WriteField(fieldCadDone, v)
}

func (r *RegisterMap) FhssChangeChannel() (byte, error) {
	return r.codec.ReadField(fieldFhssChangeChannel)
}
func (r *RegisterMap) SetFhssChangeChannel(v byte) (byte, error) {
	return r.codec.WriteField(fieldFhssChangeChannel, v)
}

func (r *RegisterMap) CadDetected() (byte, error) { return r.codec.ReadField(fieldCadDetected) }
func (r *RegisterMap) SetCadDetected(v byte) (byte, error) {
	return r.codec.WriteField(fieldCadDetected, v)
}

// ClearIrqFlags writes all-ones to RegIrqFlags (each bit is cleared by
// writing a 1 to it) and returns the flags observed beforehand.
func (r *RegisterMap) ClearIrqFlags() (byte, error) {
	return r.codec.bus.WriteRegister(regIrqFlags, 0xFF)
}

// IrqFlags is a convenience full-byte read of RegIrqFlags.
func (r *RegisterMap) IrqFlags() (byte, error) {
	return r.codec.bus.ReadRegister(regIrqFlags)
}

// --- hop channel ---

func (r *RegisterMap) PllTimeout() (byte, error) { return r.codec.ReadField(fieldPllTimeout) }

func (r *RegisterMap) CrcOnPayload() (byte, error) { return r.codec.ReadField(fieldCrcOnPayload) }

func (r *RegisterMap) FhssPresentChannel() (byte, error) {
	return r.codec.ReadField(fieldFhssPresentChannel)
}
