// Package sx1276 drives an SX1276-class chirp-spread-spectrum radio
// transceiver in LoRa mode over a four-wire synchronous serial bus plus
// chip-select and reset GPIO lines.
//
// The package is organized around three tightly coupled subsystems: a
// register-field codec that hides bit-packing behind named accessors, a
// regulatory band-plan engine that recomputes power/bandwidth/duty ceilings
// whenever the carrier frequency changes, and a transmit duty-cycle
// accountant that enforces a rolling-hour airtime quota plus a
// post-transmission quiet hold. FSK mode is not supported.
package sx1276
