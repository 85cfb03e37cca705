package sx1276

import "errors"

// Error taxonomy: one distinct value per documented failure mode, so
// callers can switch on them with errors.Is. Errors from opening the bus
// or resolving pins, and BandwidthHz's out-of-table index error, are not
// among these values.
var (
	ErrBusFailure          = errors.New("sx1276: bus transfer failed")
	ErrResetFailure        = errors.New("sx1276: reset probe did not read back standby")
	ErrInvalidArgument     = errors.New("sx1276: argument out of domain")
	ErrInputTooLong        = errors.New("sx1276: transmit payload length must be 1..255")
	ErrOutOfBand           = errors.New("sx1276: frequency has no permitted sub-band")
	ErrBandwidthDisallowed = errors.New("sx1276: bandwidth exceeds band-plan ceiling")
	ErrHoldoffActive       = errors.New("sx1276: transmit attempted before post-transmit hold expired")
	ErrQuotaExceeded       = errors.New("sx1276: transmit would exceed rolling-hour duty quota")
	ErrBufferOverflow      = errors.New("sx1276: received packet exceeds caller buffer capacity")
	ErrOutOfRange          = errors.New("sx1276: frequency outside 137MHz..1020MHz")
	ErrTimeout             = errors.New("sx1276: operation did not complete within its deadline")
)
