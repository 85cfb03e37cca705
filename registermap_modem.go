package sx1276

// --- modem config 1 ---

func (r *RegisterMap) BandwidthIndex() (byte, error) { return r.codec.ReadField(fieldBandwidthIndex) }
func (r *RegisterMap) SetBandwidthIndex(v byte) (byte, error) {
	return r.codec.WriteField(fieldBandwidthIndex, v)
}

func (r *RegisterMap) CodingRateIndex() (byte, error) { return r.codec.ReadField(fieldCodingRateIndex) }
func (r *RegisterMap) SetCodingRateIndex(v byte) (byte, error) {
	return r.codec.WriteField(fieldCodingRateIndex, v)
}

func (r *RegisterMap) ImplicitHeaderModeOn() (byte, error) {
	return r.codec.ReadField(fieldImplicitHeaderMode)
}
func (r *RegisterMap) SetImplicitHeaderModeOn(v byte) (byte, error) {
	return r.codec.WriteField(fieldImplicitHeaderMode, v)
}

// --- modem config 2 ---

func (r *RegisterMap) SpreadingFactor() (byte, error) { return r.codec.ReadField(fieldSpreadingFactor) }
func (r *RegisterMap) SetSpreadingFactor(v byte) (byte, error) {
	return r.codec.WriteField(fieldSpreadingFactor, v)
}

func (r *RegisterMap) TxContinuousMode() (byte, error) {
	return r.codec.ReadField(fieldTxContinuousMode)
}
func (r *RegisterMap) SetTxContinuousMode(v byte) (byte, error) {
	return r.codec.WriteField(fieldTxContinuousMode, v)
}

func (r *RegisterMap) RxPayloadCrcOn() (byte, error) { return r.codec.ReadField(fieldRxPayloadCrcOn) }
func (r *RegisterMap) SetRxPayloadCrcOn(v byte) (byte, error) {
	return r.codec.WriteField(fieldRxPayloadCrcOn, v)
}

// SymbTimeout is the 10-bit receive symbol timeout, split across the low
// two bits of RegModemConfig2 and the whole of RegSymbTimeoutLsb. Unlike
// the original firmware's concatenated-return-code version of this setter
// (design notes, open question (a)), this returns the previous 10-bit
// value explicitly rather than the shifted concatenation of two
// one-field write results.
func (r *RegisterMap) SymbTimeout() (uint16, error) {
	msb, err := r.codec.ReadField(fieldSymbTimeoutMsb)
	if err != nil {
		return 0, err
	}
	lsb, err := r.codec.bus.ReadRegister(regSymbTimeoutLsb)
	if err != nil {
		return 0, err
	}
	return uint16(msb)<<8 | uint16(lsb), nil
}

func (r *RegisterMap) SetSymbTimeout(v uint16) (uint16, error) {
	prevMsb, err := r.codec.WriteField(fieldSymbTimeoutMsb, byte(v>>8))
	if err != nil {
		return 0, err
	}
	prevLsb, err := r.codec.bus.WriteRegister(regSymbTimeoutLsb, byte(v))
	if err != nil {
		return 0, err
	}
	return uint16(prevMsb)<<8 | uint16(prevLsb), nil
}

// --- preamble, length 16-bit ---

func (r *RegisterMap) PreambleLength() (uint16, error) {
	v, err := r.codec.readMultiByte(regPreambleMsb, regPreambleLsb)
	return uint16(v), err
}

func (r *RegisterMap) SetPreambleLength(v uint16) (uint16, error) {
	prev, err := r.codec.writeMultiByte(uint32(v), regPreambleMsb, regPreambleLsb)
	return uint16(prev), err
}

// --- payload length / max length ---

func (r *RegisterMap) PayloadLength() (byte, error) { return r.codec.ReadField(fieldPayloadLength) }
func (r *RegisterMap) SetPayloadLength(v byte) (byte, error) {
	return r.codec.WriteField(fieldPayloadLength, v)
}

func (r *RegisterMap) PayloadMaxLength() (byte, error) { return r.codec.ReadField(fieldPayloadMaxLength) }
func (r *RegisterMap) SetPayloadMaxLength(v byte) (byte, error) {
	return r.codec.WriteField(fieldPayloadMaxLength, v)
}

// --- FHSS hop period ---

func (r *RegisterMap) FreqHoppingPeriod() (byte, error) {
	return r.codec.ReadField(fieldFreqHoppingPeriod)
}
func (r *RegisterMap) SetFreqHoppingPeriod(v byte) (byte, error) {
	return r.codec.WriteField(fieldFreqHoppingPeriod, v)
}

// --- modem config 3 ---

func (r *RegisterMap) LowDataRateOptimize() (byte, error) {
	return r.codec.ReadField(fieldLowDataRateOptimize)
}
func (r *RegisterMap) SetLowDataRateOptimize(v byte) (byte, error) {
	return r.codec.WriteField(fieldLowDataRateOptimize, v)
}

func (r *RegisterMap) AgcAutoOn() (byte, error) { return r.codec.ReadField(fieldAgcAutoOn) }
func (r *RegisterMap) SetAgcAutoOn(v byte) (byte, error) {
	return r.codec.WriteField(fieldAgcAutoOn, v)
}

// --- PPM correction ---

func (r *RegisterMap) PpmCorrection() (byte, error) { return r.codec.ReadField(fieldPpmCorrection) }
func (r *RegisterMap) SetPpmCorrection(v byte) (byte, error) {
	return r.codec.WriteField(fieldPpmCorrection, v)
}

// --- frequency error, 20-bit signed magnitude ---

// FreqError returns the raw 20-bit frequency error estimate: the low
// nibble of RegFeiMsb packed with the full RegFeiMid and RegFeiLsb bytes.
// Bit 19 is the sign bit; callers that need a signed Hz value convert it
// themselves, since the scaling depends on the configured bandwidth.
func (r *RegisterMap) FreqError() (uint32, error) {
	msb, err := r.codec.ReadField(fieldFeiMsb)
	if err != nil {
		return 0, err
	}
	mid, err := r.codec.bus.ReadRegister(regFeiMid)
	if err != nil {
		return 0, err
	}
	lsb, err := r.codec.bus.ReadRegister(regFeiLsb)
	if err != nil {
		return 0, err
	}
	return uint32(msb)<<16 | uint32(mid)<<8 | uint32(lsb), nil
}

// --- RSSI wideband, IF frequency, detect/invert/highbw/detection ---

func (r *RegisterMap) RssiWideband() (byte, error) { return r.codec.ReadField(fieldRssiWideband) }

func (r *RegisterMap) IfFreq2() (byte, error) { return r.codec.ReadField(fieldIfFreq2) }
func (r *RegisterMap) SetIfFreq2(v byte) (byte, error) {
	return r.codec.WriteField(fieldIfFreq2, v)
}

func (r *RegisterMap) IfFreq1() (byte, error) { return r.codec.ReadField(fieldIfFreq1) }
func (r *RegisterMap) SetIfFreq1(v byte) (byte, error) {
	return r.codec.WriteField(fieldIfFreq1, v)
}

func (r *RegisterMap) AutomaticIFOn() (byte, error) { return r.codec.ReadField(fieldAutomaticIFOn) }
func (r *RegisterMap) SetAutomaticIFOn(v byte) (byte, error) {
	return r.codec.WriteField(fieldAutomaticIFOn, v)
}

func (r *RegisterMap) DetectOptimize() (byte, error) { return r.codec.ReadField(fieldDetectOptimize) }
func (r *RegisterMap) SetDetectOptimize(v byte) (byte, error) {
	return r.codec.WriteField(fieldDetectOptimize, v)
}

func (r *RegisterMap) InvertIQRx() (byte, error) { return r.codec.ReadField(fieldInvertIQRx) }
func (r *RegisterMap) SetInvertIQRx(v byte) (byte, error) {
	return r.codec.WriteField(fieldInvertIQRx, v)
}

func (r *RegisterMap) InvertIQTx() (byte, error) { return r.codec.ReadField(fieldInvertIQTx) }
func (r *RegisterMap) SetInvertIQTx(v byte) (byte, error) {
	return r.codec.WriteField(fieldInvertIQTx, v)
}

func (r *RegisterMap) HighBWOptimize1() (byte, error) { return r.codec.ReadField(fieldHighBWOptimize1) }
func (r *RegisterMap) SetHighBWOptimize1(v byte) (byte, error) {
	return r.codec.WriteField(fieldHighBWOptimize1, v)
}

func (r *RegisterMap) DetectionThreshold() (byte, error) {
	return r.codec.ReadField(fieldDetectionThreshold)
}
func (r *RegisterMap) SetDetectionThreshold(v byte) (byte, error) {
	return r.codec.WriteField(fieldDetectionThreshold, v)
}

func (r *RegisterMap) SyncWord() (byte, error) { return r.codec.ReadField(fieldSyncWord) }
func (r *RegisterMap) SetSyncWord(v byte) (byte, error) {
	return r.codec.WriteField(fieldSyncWord, v)
}

func (r *RegisterMap) HighBWOptimize2() (byte, error) { return r.codec.ReadField(fieldHighBWOptimize2) }
func (r *RegisterMap) SetHighBWOptimize2(v byte) (byte, error) {
	return r.codec.WriteField(fieldHighBWOptimize2, v)
}

func (r *RegisterMap) InvertIQ2() (byte, error) { return r.codec.ReadField(fieldInvertIQ2) }
func (r *RegisterMap) SetInvertIQ2(v byte) (byte, error) {
	return r.codec.WriteField(fieldInvertIQ2, v)
}

// --- DIO mapping ---

func (r *RegisterMap) Dio0Mapping() (byte, error) { return r.codec.ReadField(fieldDio0Mapping) }
func (r *RegisterMap) SetDio0Mapping(v byte) (byte, error) {
	return r.codec.WriteField(fieldDio0Mapping, v)
}

func (r *RegisterMap) Dio1Mapping() (byte, error) { return r.codec.ReadField(fieldDio1Mapping) }
func (r *RegisterMap) SetDio1Mapping(v byte) (byte, error) {
	return r.codec.WriteField(fieldDio1Mapping, v)
}

func (r *RegisterMap) Dio2Mapping() (byte, error) { return r.codec.ReadField(fieldDio2Mapping) }
func (r *RegisterMap) SetDio2Mapping(v byte) (byte, error) {
	return r.codec.WriteField(fieldDio2Mapping, v)
}

func (r *RegisterMap) Dio3Mapping() (byte, error) { return r.codec.ReadField(fieldDio3Mapping) }
func (r *RegisterMap) SetDio3Mapping(v byte) (byte, error) {
	return r.codec.WriteField(fieldDio3Mapping, v)
}

func (r *RegisterMap) Dio4Mapping() (byte, error) { return r.codec.ReadField(fieldDio4Mapping) }
func (r *RegisterMap) SetDio4Mapping(v byte) (byte, error) {
	return r.codec.WriteField(fieldDio4Mapping, v)
}

func (r *RegisterMap) Dio5Mapping() (byte, error) { return r.codec.ReadField(fieldDio5Mapping) }
func (r *RegisterMap) SetDio5Mapping(v byte) (byte, error) {
	return r.codec.WriteField(fieldDio5Mapping, v)
}

// --- AGC ---

func (r *RegisterMap) AgcReferenceLevel() (byte, error) {
	return r.codec.ReadField(fieldAgcReferenceLevel)
}
func (r *RegisterMap) SetAgcReferenceLevel(v byte) (byte, error) {
	return r.codec.WriteField(fieldAgcReferenceLevel, v)
}

func (r *RegisterMap) AgcStep1() (byte, error) { return r.codec.ReadField(fieldAgcStep1) }
func (r *RegisterMap) SetAgcStep1(v byte) (byte, error) {
	return r.codec.WriteField(fieldAgcStep1, v)
}

func (r *RegisterMap) AgcStep2() (byte, error) { return r.codec.ReadField(fieldAgcStep2) }
func (r *RegisterMap) SetAgcStep2(v byte) (byte, error) {
	return r.codec.WriteField(fieldAgcStep2, v)
}

func (r *RegisterMap) AgcStep3() (byte, error) { return r.codec.ReadField(fieldAgcStep3) }
func (r *RegisterMap) SetAgcStep3(v byte) (byte, error) {
	return r.codec.WriteField(fieldAgcStep3, v)
}

func (r *RegisterMap) AgcStep4() (byte, error) { return r.codec.ReadField(fieldAgcStep4) }
func (r *RegisterMap) SetAgcStep4(v byte) (byte, error) {
	return r.codec.WriteField(fieldAgcStep4, v)
}

func (r *RegisterMap) AgcStep5() (byte, error) { return r.codec.ReadField(fieldAgcStep5) }
func (r *RegisterMap) SetAgcStep5(v byte) (byte, error) {
	return r.codec.WriteField(fieldAgcStep5, v)
}

// --- receive diagnostics ---

func (r *RegisterMap) ModemStatus() (byte, error)  { return r.codec.ReadField(fieldModemStatus) }
func (r *RegisterMap) RxCodingRate() (byte, error) { return r.codec.ReadField(fieldRxCodingRate) }
func (r *RegisterMap) PacketSnr() (byte, error)    { return r.codec.ReadField(fieldPacketSnr) }
func (r *RegisterMap) PacketRssi() (byte, error)   { return r.codec.ReadField(fieldPacketRssi) }
func (r *RegisterMap) Rssi() (byte, error)         { return r.codec.ReadField(fieldRssi) }

func (r *RegisterMap) ValidHeaderCnt() (uint16, error) {
	v, err := r.codec.readMultiByte(regRxHeaderCntMsb, regRxHeaderCntLsb)
	return uint16(v), err
}

func (r *RegisterMap) ValidPacketCnt() (uint16, error) {
	v, err := r.codec.readMultiByte(regRxPacketCntMsb, regRxPacketCntLsb)
	return uint16(v), err
}
