package sx1276

import (
	"io"
	"log"

	"github.com/natefinch/lumberjack"
)

// traceSink is a rotating debug-trace log. It is nil by default (no-op
// tracing); EnableTrace or a Config with trace.enabled turns it on.
type traceSink struct {
	logger *log.Logger
	closer io.Closer
}

func newTraceSink(cfg TraceConfig) (*traceSink, error) {
	if cfg.Path == "" {
		return nil, ErrInvalidArgument
	}
	maxSize := cfg.MaxSizeMB
	if maxSize == 0 {
		maxSize = 10
	}
	maxBackups := cfg.MaxBackups
	if maxBackups == 0 {
		maxBackups = 3
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
	}
	return &traceSink{
		logger: log.New(rotator, "sx1276 ", log.LstdFlags|log.Lmicroseconds),
		closer: rotator,
	}, nil
}

func (t *traceSink) printf(format string, args ...any) {
	if t == nil {
		return
	}
	t.logger.Printf(format, args...)
}

func (t *traceSink) close() error {
	if t == nil {
		return nil
	}
	return t.closer.Close()
}

// EnableTrace turns on rotating debug-trace logging for d, replacing any
// previously configured sink.
func (d *Driver) EnableTrace(cfg TraceConfig) error {
	sink, err := newTraceSink(cfg)
	if err != nil {
		return err
	}
	d.trace = sink
	return nil
}

// DisableTrace closes and removes the trace sink, if any.
func (d *Driver) DisableTrace() error {
	err := d.trace.close()
	d.trace = nil
	return err
}
