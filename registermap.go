package sx1276

// RegisterMap exposes one getter and one setter per named LoRa-mode
// register field. Every accessor is a thin wrapper over FieldCodec;
// getters never mutate device state, setters return the field's previous
// value so callers can save and restore a transient override (as
// TxEngine does around the output-power ceiling).
type RegisterMap struct {
	codec *FieldCodec
}

func newRegisterMap(codec *FieldCodec) *RegisterMap {
	return &RegisterMap{codec: codec}
}

// --- operating-mode word ---

func (r *RegisterMap) LongRangeMode() (byte, error) { return r.codec.ReadField(fieldLongRangeMode) }
func (r *RegisterMap) SetLongRangeMode(v byte) (byte, error) {
	return r.codec.WriteField(fieldLongRangeMode, v)
}

func (r *RegisterMap) AccessSharedReg() (byte, error) { return r.codec.ReadField(fieldAccessSharedReg) }
func (r *RegisterMap) SetAccessSharedReg(v byte) (byte, error) {
	return r.codec.WriteField(fieldAccessSharedReg, v)
}

func (r *RegisterMap) LowFrequencyModeOn() (byte, error) {
	return r.codec.ReadField(fieldLowFrequencyModeOn)
}
func (r *RegisterMap) SetLowFrequencyModeOn(v byte) (byte, error) {
	return r.codec.WriteField(fieldLowFrequencyModeOn, v)
}

func (r *RegisterMap) ModeField() (byte, error) { return r.codec.ReadField(fieldMode) }
func (r *RegisterMap) SetModeField(v byte) (byte, error) {
	return r.codec.WriteField(fieldMode, v)
}

// --- carrier frequency, 24-bit word (RegFrfMsb/Mid/Lsb) ---

func (r *RegisterMap) Frf() (uint32, error) {
	return r.codec.readMultiByte(regFrfMsb, regFrfMid, regFrfLsb)
}

func (r *RegisterMap) SetFrf(v uint32) (uint32, error) {
	return r.codec.writeMultiByte(v, regFrfMsb, regFrfMid, regFrfLsb)
}

// --- power amplifier ---

func (r *RegisterMap) PaSelect() (byte, error) { return r.codec.ReadField(fieldPaSelect) }
func (r *RegisterMap) SetPaSelect(v byte) (byte, error) {
	return r.codec.WriteField(fieldPaSelect, v)
}

func (r *RegisterMap) MaxPower() (byte, error) { return r.codec.ReadField(fieldMaxPower) }
func (r *RegisterMap) SetMaxPower(v byte) (byte, error) {
	return r.codec.WriteField(fieldMaxPower, v)
}

func (r *RegisterMap) OutputPower() (byte, error) { return r.codec.ReadField(fieldOutputPower) }
func (r *RegisterMap) SetOutputPower(v byte) (byte, error) {
	return r.codec.WriteField(fieldOutputPower, v)
}

func (r *RegisterMap) PaRamp() (byte, error) { return r.codec.ReadField(fieldPaRamp) }
func (r *RegisterMap) SetPaRamp(v byte) (byte, error) {
	return r.codec.WriteField(fieldPaRamp, v)
}

func (r *RegisterMap) OcpOn() (byte, error) { return r.codec.ReadField(fieldOcpOn) }
func (r *RegisterMap) SetOcpOn(v byte) (byte, error) {
	return r.codec.WriteField(fieldOcpOn, v)
}

func (r *RegisterMap) OcpTrim() (byte, error) { return r.codec.ReadField(fieldOcpTrim) }
func (r *RegisterMap) SetOcpTrim(v byte) (byte, error) {
	return r.codec.WriteField(fieldOcpTrim, v)
}

func (r *RegisterMap) PaDac() (byte, error) { return r.codec.ReadField(fieldPaDac) }
func (r *RegisterMap) SetPaDac(v byte) (byte, error) {
	return r.codec.WriteField(fieldPaDac, v)
}

// --- LNA ---

func (r *RegisterMap) LnaGain() (byte, error) { return r.codec.ReadField(fieldLnaGain) }
func (r *RegisterMap) SetLnaGain(v byte) (byte, error) {
	return r.codec.WriteField(fieldLnaGain, v)
}

func (r *RegisterMap) LnaBoostLf() (byte, error) { return r.codec.ReadField(fieldLnaBoostLf) }
func (r *RegisterMap) SetLnaBoostLf(v byte) (byte, error) {
	return r.codec.WriteField(fieldLnaBoostLf, v)
}

func (r *RegisterMap) LnaBoostHf() (byte, error) { return r.codec.ReadField(fieldLnaBoostHf) }
func (r *RegisterMap) SetLnaBoostHf(v byte) (byte, error) {
	return r.codec.WriteField(fieldLnaBoostHf, v)
}

// --- FIFO pointer trio ---

func (r *RegisterMap) FifoAddrPtr() (byte, error) { return r.codec.ReadField(fieldFifoAddrPtr) }
func (r *RegisterMap) SetFifoAddrPtr(v byte) (byte, error) {
	return r.codec.WriteField(fieldFifoAddrPtr, v)
}

func (r *RegisterMap) FifoTxBaseAddr() (byte, error) { return r.codec.ReadField(fieldFifoTxBaseAddr) }
func (r *RegisterMap) SetFifoTxBaseAddr(v byte) (byte, error) {
	return r.codec.WriteField(fieldFifoTxBaseAddr, v)
}

func (r *RegisterMap) FifoRxBaseAddr() (byte, error) { return r.codec.ReadField(fieldFifoRxBaseAddr) }
func (r *RegisterMap) SetFifoRxBaseAddr(v byte) (byte, error) {
	return r.codec.WriteField(fieldFifoRxBaseAddr, v)
}

func (r *RegisterMap) FifoRxCurrentAddr() (byte, error) {
	return r.codec.ReadField(fieldFifoRxCurrentAddr)
}

func (r *RegisterMap) FifoRxByteAddrPtr() (byte, error) {
	return r.codec.ReadField(fieldFifoRxByteAddr)
}

func (r *RegisterMap) RxNbBytes() (byte, error) { return r.codec.ReadField(fieldRxNbBytes) }

// Fifo reads or writes one byte directly at the FIFO's current pointer
// (the pointer auto-increments in silicon on each access).
func (r *RegisterMap) Fifo() (byte, error) { return r.codec.bus.ReadRegister(regFifo) }
func (r *RegisterMap) SetFifo(v byte) (byte, error) { return r.codec.bus.WriteRegister(regFifo, v) }

func (r *RegisterMap) Version() (byte, error) { return r.codec.ReadField(fieldVersion) }

func (r *RegisterMap) FormerTemp() (byte, error) { return r.codec.ReadField(fieldFormerTemp) }

func (r *RegisterMap) PllBandwidth() (byte, error) { return r.codec.ReadField(fieldPllBandwidth) }
func (r *RegisterMap) SetPllBandwidth(v byte) (byte, error) {
	return r.codec.WriteField(fieldPllBandwidth, v)
}
