package sx1276

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// Bus transports an (address, data) pair to the radio and returns the byte
// shifted back on the same cycle. Implementations frame each register
// operation as a two-byte transfer: addr|0x80 for a write or addr for a
// read, followed by the data byte (zero on read).
//
// Operations are mutually blocking on the same bus; concurrent calls from
// distinct goroutines must be serialized by the caller.
type Bus interface {
	ReadRegister(addr byte) (byte, error)
	WriteRegister(addr byte, data byte) (byte, error)
	Reset(sleep func(time.Duration)) error
}

// HardwareBus drives the radio over a periph.io SPI port, framing chip
// select itself rather than relying on periph.io's own hardware CS, per
// the driver's own chip-select contract.
type HardwareBus struct {
	conn  spi.Conn
	cs    gpio.PinIO
	reset gpio.PinIO
}

// NewHardwareBus opens spiName at clockHz (SPI mode 0, 8 bits, MSB first)
// and drives the already-resolved cs and reset pins high.
func NewHardwareBus(spiName string, clockHz physic.Frequency, cs, reset gpio.PinIO) (*HardwareBus, error) {
	port, err := spireg.Open(spiName)
	if err != nil {
		return nil, err
	}
	conn, err := port.Connect(clockHz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, err
	}
	if err := reset.Out(gpio.High); err != nil {
		return nil, err
	}
	return &HardwareBus{conn: conn, cs: cs, reset: reset}, nil
}

func (b *HardwareBus) ReadRegister(addr byte) (byte, error) {
	w := []byte{addr &^ 0x80, 0x00}
	r := make([]byte, 2)
	if err := b.cs.Out(gpio.Low); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBusFailure, err)
	}
	err := b.conn.Tx(w, r)
	if cerr := b.cs.Out(gpio.High); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBusFailure, err)
	}
	return r[1], nil
}

func (b *HardwareBus) WriteRegister(addr byte, data byte) (byte, error) {
	w := []byte{addr | 0x80, data}
	r := make([]byte, 2)
	if err := b.cs.Out(gpio.Low); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBusFailure, err)
	}
	err := b.conn.Tx(w, r)
	if cerr := b.cs.Out(gpio.High); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBusFailure, err)
	}
	return r[1], nil
}

func (b *HardwareBus) Reset(sleep func(time.Duration)) error {
	return resetPulse(b.reset, sleep)
}

// SoftwareBus bit-bangs SCK/MOSI/MISO directly over GPIO, for hosts that
// expose no dedicated SPI peripheral (the "secondary pin indices for
// platforms with software-defined bus" construction argument). Same wire
// format as HardwareBus: MSB-first, mode 0, byte-synchronous with chip
// select.
type SoftwareBus struct {
	sck, mosi, miso gpio.PinIO
	cs, reset       gpio.PinIO
}

// NewSoftwareBus configures the three bit-banged lines (SCK, MOSI, MISO)
// plus chip select and reset, all as periph.io GPIO pins.
func NewSoftwareBus(sck, mosi, miso, cs, reset gpio.PinIO) (*SoftwareBus, error) {
	if err := sck.Out(gpio.Low); err != nil {
		return nil, err
	}
	if err := mosi.Out(gpio.Low); err != nil {
		return nil, err
	}
	if err := miso.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		return nil, err
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, err
	}
	if err := reset.Out(gpio.High); err != nil {
		return nil, err
	}
	return &SoftwareBus{sck: sck, mosi: mosi, miso: miso, cs: cs, reset: reset}, nil
}

func (b *SoftwareBus) transferByte(out byte) (byte, error) {
	var in byte
	for bit := 7; bit >= 0; bit-- {
		level := gpio.Low
		if out&(1<<uint(bit)) != 0 {
			level = gpio.High
		}
		if err := b.mosi.Out(level); err != nil {
			return 0, err
		}
		if err := b.sck.Out(gpio.High); err != nil {
			return 0, err
		}
		if b.miso.Read() == gpio.High {
			in |= 1 << uint(bit)
		}
		if err := b.sck.Out(gpio.Low); err != nil {
			return 0, err
		}
	}
	return in, nil
}

func (b *SoftwareBus) frame(first, second byte) (byte, error) {
	if err := b.cs.Out(gpio.Low); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBusFailure, err)
	}
	defer b.cs.Out(gpio.High)
	if _, err := b.transferByte(first); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBusFailure, err)
	}
	v, err := b.transferByte(second)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBusFailure, err)
	}
	return v, nil
}

func (b *SoftwareBus) ReadRegister(addr byte) (byte, error) {
	return b.frame(addr&^0x80, 0x00)
}

func (b *SoftwareBus) WriteRegister(addr byte, data byte) (byte, error) {
	return b.frame(addr|0x80, data)
}

func (b *SoftwareBus) Reset(sleep func(time.Duration)) error {
	return resetPulse(b.reset, sleep)
}

// resetPulse drives reset low for 10ms, then releases it high and settles
// for 10ms, per the reset-line contract in the external interfaces.
func resetPulse(reset gpio.PinIO, sleep func(time.Duration)) error {
	if err := reset.Out(gpio.Low); err != nil {
		return err
	}
	sleep(10 * time.Millisecond)
	if err := reset.Out(gpio.High); err != nil {
		return err
	}
	sleep(10 * time.Millisecond)
	return nil
}
