package enigma

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvenigma/reflector"
)

// Option configures a Machine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*MachineOptions)

// MachineOptions holds the optional machine parts.
type MachineOptions struct {
	// Reflector is the turnaround wheel. Nil is an option violation.
	Reflector *reflector.Reflector

	// Logger receives assembly and reseed events.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a MachineOptions with:
//   - reflector B
//   - a logger that discards everything.
func DefaultOptions() MachineOptions {
	return MachineOptions{
		Reflector: reflector.B,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithReflector installs r instead of the default reflector B.
// A nil reflector is an option violation.
func WithReflector(r *reflector.Reflector) Option {
	return func(o *MachineOptions) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil reflector", ErrOptionViolation)

			return
		}
		o.Reflector = r
	}
}

// WithLogger sets the logger for assembly and reseed events. Text passing
// through the machine is never logged. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *MachineOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Validate reports a nil reflector or an error recorded by an Option.
func (o MachineOptions) Validate() error {
	if o.err != nil {
		return o.err
	}
	if o.Reflector == nil {
		return fmt.Errorf("%w: nil reflector", ErrOptionViolation)
	}

	return nil
}
