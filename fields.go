package sx1276

// Named field descriptors, one per documented LoRa-mode parameter. Each is
// a (register address, bit width, bit offset) triple; RegisterMap's
// accessors are one-line wrappers over FieldCodec keyed by these values,
// so the bit layout lives in exactly one place.
var (
	fieldLongRangeMode  = Field{regOpMode, 1, 7}
	fieldAccessSharedReg = Field{regOpMode, 1, 6}
	fieldLowFrequencyModeOn = Field{regOpMode, 1, 3}
	fieldMode           = Field{regOpMode, 3, 0}

	fieldPaSelect   = Field{regPaConfig, 1, 7}
	fieldMaxPower   = Field{regPaConfig, 3, 4}
	fieldOutputPower = Field{regPaConfig, 4, 0}
	fieldPaRamp     = Field{regPaRamp, 4, 0}
	fieldOcpOn      = Field{regOcp, 1, 5}
	fieldOcpTrim    = Field{regOcp, 5, 0}
	fieldPaDac      = Field{regPaDac, 3, 0}

	fieldLnaGain    = Field{regLna, 3, 5}
	fieldLnaBoostLf = Field{regLna, 2, 3}
	fieldLnaBoostHf = Field{regLna, 2, 0}

	fieldFifoAddrPtr       = Field{regFifoAddrPtr, 8, 0}
	fieldFifoTxBaseAddr    = Field{regFifoTxBaseAddr, 8, 0}
	fieldFifoRxBaseAddr    = Field{regFifoRxBaseAddr, 8, 0}
	fieldFifoRxCurrentAddr = Field{regFifoRxCurrentAddr, 8, 0}
	fieldFifoRxByteAddr    = Field{regFifoRxByteAddr, 8, 0}
	fieldRxNbBytes         = Field{regRxNbBytes, 8, 0}

	fieldRxTimeoutMask         = Field{regIrqFlagsMask, 1, 7}
	fieldRxDoneMask            = Field{regIrqFlagsMask, 1, 6}
	fieldPayloadCrcErrorMask   = Field{regIrqFlagsMask, 1, 5}
	fieldValidHeaderMask       = Field{regIrqFlagsMask, 1, 4}
	fieldTxDoneMask            = Field{regIrqFlagsMask, 1, 3}
	fieldCadDoneMask           = Field{regIrqFlagsMask, 1, 2}
	fieldFhssChangeChannelMask = Field{regIrqFlagsMask, 1, 1}
	fieldCadDetectedMask       = Field{regIrqFlagsMask, 1, 0}

	fieldRxTimeout         = Field{regIrqFlags, 1, 7}
	fieldRxDone            = Field{regIrqFlags, 1, 6}
	fieldPayloadCrcError   = Field{regIrqFlags, 1, 5}
	fieldValidHeader       = Field{regIrqFlags, 1, 4}
	fieldTxDone            = Field{regIrqFlags, 1, 3}
	fieldCadDone           = Field{regIrqFlags, 1, 2}
	fieldFhssChangeChannel = Field{regIrqFlags, 1, 1}
	fieldCadDetected       = Field{regIrqFlags, 1, 0}

	fieldPllTimeout        = Field{regHopChannel, 1, 7}
	fieldCrcOnPayload      = Field{regHopChannel, 1, 6}
	fieldFhssPresentChannel = Field{regHopChannel, 6, 0}

	fieldBandwidthIndex     = Field{regModemConfig1, 4, 4}
	fieldCodingRateIndex    = Field{regModemConfig1, 3, 1}
	fieldImplicitHeaderMode = Field{regModemConfig1, 1, 0}

	fieldSpreadingFactor   = Field{regModemConfig2, 4, 4}
	fieldTxContinuousMode  = Field{regModemConfig2, 1, 3}
	fieldRxPayloadCrcOn    = Field{regModemConfig2, 1, 2}
	fieldSymbTimeoutMsb    = Field{regModemConfig2, 2, 0}

	fieldPreambleMsb = Field{regPreambleMsb, 8, 0}
	fieldPreambleLsb = Field{regPreambleLsb, 8, 0}

	fieldPayloadLength    = Field{regPayloadLength, 8, 0}
	fieldPayloadMaxLength = Field{regMaxPayloadLength, 8, 0}
	fieldFreqHoppingPeriod = Field{regHopPeriod, 8, 0}

	fieldLowDataRateOptimize = Field{regModemConfig3, 1, 3}
	fieldAgcAutoOn           = Field{regModemConfig3, 1, 2}

	fieldPpmCorrection = Field{regPpmCorrection, 8, 0}

	fieldFeiMsb = Field{regFeiMsb, 4, 0}

	fieldRssiWideband = Field{regRssiWideband, 8, 0}

	fieldIfFreq2 = Field{regIfFreq2, 8, 0}
	fieldIfFreq1 = Field{regIfFreq1, 8, 0}

	fieldAutomaticIFOn   = Field{regDetectOptimize, 1, 7}
	fieldDetectOptimize  = Field{regDetectOptimize, 3, 0}

	fieldInvertIQRx = Field{regInvertIQ, 1, 6}
	fieldInvertIQTx = Field{regInvertIQ, 1, 0}

	fieldHighBWOptimize1   = Field{regHighBWOptimize1, 8, 0}
	fieldDetectionThreshold = Field{regDetectionThreshold, 8, 0}
	fieldSyncWord          = Field{regSyncWord, 8, 0}
	fieldHighBWOptimize2   = Field{regHighBWOptimize2, 8, 0}
	fieldInvertIQ2         = Field{regInvertIQ2, 8, 0}

	fieldDio0Mapping = Field{regDioMapping1, 2, 6}
	fieldDio1Mapping = Field{regDioMapping1, 2, 4}
	fieldDio2Mapping = Field{regDioMapping1, 2, 2}
	fieldDio3Mapping = Field{regDioMapping1, 2, 0}
	fieldDio4Mapping = Field{regDioMapping2, 2, 6}
	fieldDio5Mapping = Field{regDioMapping2, 2, 4}

	fieldVersion     = Field{regVersion, 8, 0}
	fieldFormerTemp  = Field{regFormerTemp, 8, 0}

	fieldAgcReferenceLevel = Field{regAgcRef, 6, 0}
	fieldAgcStep1          = Field{regAgcThresh1, 4, 0}
	fieldAgcStep2          = Field{regAgcThresh2, 4, 4}
	fieldAgcStep3          = Field{regAgcThresh2, 4, 0}
	fieldAgcStep4          = Field{regAgcThresh3, 4, 4}
	fieldAgcStep5          = Field{regAgcThresh3, 4, 0}

	fieldPllBandwidth = Field{regPll, 4, 0}

	fieldModemStatus  = Field{regModemStat, 5, 0}
	fieldRxCodingRate = Field{regModemStat, 3, 5}

	fieldPacketSnr  = Field{regPktSnrValue, 8, 0}
	fieldPacketRssi = Field{regPktRssiValue, 8, 0}
	fieldRssi       = Field{regRssiValue, 8, 0}
)
