package sx1276

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Config is the YAML-loadable description of one radio instance: which
// bus to open, which GPIO lines carry chip-select and reset (and,
// optionally, a bit-banged SPI triple for hosts with no SPI peripheral),
// and the initial band plan and PA output to apply on Initialize.
type Config struct {
	Bus BusConfig `yaml:"bus"`

	PAOutput string      `yaml:"pa_output"`
	BandPlan string      `yaml:"band_plan"`
	Trace    TraceConfig `yaml:"trace"`
}

// BusConfig names the periph.io pins backing a Bus. A non-empty SCKPin
// selects SoftwareBus (with MOSIPin and MISOPin); otherwise HardwareBus
// opens SPIName.
type BusConfig struct {
	SPIName  string `yaml:"spi_name"`
	ClockHz  int64  `yaml:"clock_hz"`
	CSPin    string `yaml:"cs_pin"`
	ResetPin string `yaml:"reset_pin"`
	SCKPin   string `yaml:"sck_pin"`
	MOSIPin  string `yaml:"mosi_pin"`
	MISOPin  string `yaml:"miso_pin"`
}

// TraceConfig configures the rotating debug-trace sink.
type TraceConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// LoadConfig parses a Config from YAML.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("sx1276: parse config: %w", err)
	}
	return cfg, nil
}

// paOutputFromName maps the config's pa_output string onto PAOutput.
func paOutputFromName(name string) (PAOutput, error) {
	switch name {
	case "rfo":
		return PAOutputRFO, nil
	case "pa_boost":
		return PAOutputPABoost, nil
	default:
		return 0, fmt.Errorf("%w: pa_output %q", ErrInvalidArgument, name)
	}
}

// bandPlanFromName maps the config's band_plan string onto BandPlanID.
func bandPlanFromName(name string) (BandPlanID, error) {
	switch name {
	case "", "none":
		return BandPlanNone, nil
	case "eu868":
		return BandPlanEU868, nil
	default:
		return 0, fmt.Errorf("%w: band_plan %q", ErrInvalidArgument, name)
	}
}

// openBus resolves the named GPIO pins into a Bus, choosing SoftwareBus
// when SCKPin is set and HardwareBus otherwise.
func openBus(cfg BusConfig) (Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("sx1276: host init: %w", err)
	}
	cs := gpioreg.ByName(cfg.CSPin)
	if cs == nil {
		return nil, fmt.Errorf("sx1276: cs pin %q not found", cfg.CSPin)
	}
	reset := gpioreg.ByName(cfg.ResetPin)
	if reset == nil {
		return nil, fmt.Errorf("sx1276: reset pin %q not found", cfg.ResetPin)
	}
	if cfg.SCKPin != "" {
		sck := gpioreg.ByName(cfg.SCKPin)
		mosi := gpioreg.ByName(cfg.MOSIPin)
		miso := gpioreg.ByName(cfg.MISOPin)
		if sck == nil || mosi == nil || miso == nil {
			return nil, fmt.Errorf("sx1276: software bus pins not found")
		}
		return NewSoftwareBus(sck, mosi, miso, cs, reset)
	}
	clockHz := cfg.ClockHz
	if clockHz == 0 {
		clockHz = 1_000_000
	}
	return NewHardwareBus(cfg.SPIName, physic.Frequency(clockHz)*physic.Hertz, cs, reset)
}

// NewDriverFromConfig opens the bus named by cfg, constructs a Driver,
// and applies Initialize with the configured PA output and band plan.
func NewDriverFromConfig(cfg Config) (*Driver, error) {
	bus, err := openBus(cfg.Bus)
	if err != nil {
		return nil, err
	}
	paOutput, err := paOutputFromName(cfg.PAOutput)
	if err != nil {
		return nil, err
	}
	bandPlan, err := bandPlanFromName(cfg.BandPlan)
	if err != nil {
		return nil, err
	}
	d := NewDriver(bus)
	if cfg.Trace.Enabled {
		sink, err := newTraceSink(cfg.Trace)
		if err != nil {
			return nil, err
		}
		d.trace = sink
	}
	if err := d.Initialize(paOutput, bandPlan); err != nil {
		return nil, err
	}
	return d, nil
}
