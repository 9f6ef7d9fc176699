package enigma

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvenigma/alphabet"
	"github.com/katalvlaran/lvenigma/plugboard"
	"github.com/katalvlaran/lvenigma/reflector"
	"github.com/katalvlaran/lvenigma/rotor"
)

// Machine is a three-wheel rotor-cipher machine.
// It is not safe for concurrent use. The zero value is not usable; construct
// with New.
type Machine struct {
	rotors    [Slots]rotor.Rotor
	plugboard *plugboard.Plugboard
	reflector *reflector.Reflector

	cfg    Config
	logger *slog.Logger
}

// New validates cfg, applies opts and assembles a Machine.
//
// Validation order: options, then wheels slot by slot (identifier, ring,
// position), then the plugboard. Every error wraps ErrConfiguration and the
// leaf sentinel of the failing part.
//
// Complexity: O(len(cfg.Plugboard)).
func New(cfg Config, opts ...Option) (*Machine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	m := &Machine{
		reflector: o.Reflector,
		cfg:       cfg.clone(),
		logger:    o.Logger,
	}
	for slot, id := range cfg.Rotors {
		spec, err := rotor.Lookup(id)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %d: %w", ErrConfiguration, slot, err)
		}
		r, err := rotor.New(spec, cfg.Rings[slot], cfg.Positions[slot])
		if err != nil {
			return nil, fmt.Errorf("%w: slot %d: %w", ErrConfiguration, slot, err)
		}
		m.rotors[slot] = r
	}
	pb, err := plugboard.New(cfg.Plugboard...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	m.plugboard = pb

	m.logger.Debug("enigma: machine assembled",
		slog.Any("rotors", cfg.Rotors),
		slog.Any("rings", cfg.Rings),
		slog.Any("positions", cfg.Positions),
		slog.Int("plugs", pb.Len()),
		slog.String("reflector", m.reflector.Name()),
	)

	return m, nil
}

// Transform runs text through a freshly built machine. Because a fresh
// machine starts from cfg's positions, Transform(cfg, Transform(cfg, p)) == p
// for any p.
func Transform(cfg Config, text string, opts ...Option) (string, error) {
	m, err := New(cfg, opts...)
	if err != nil {
		return "", err
	}

	return m.Process(text), nil
}

// Process enciphers text. ASCII letters are case-folded, step the wheels and
// are substituted; every other byte (digits, spaces, punctuation, the bytes
// of non-ASCII runes) is copied unchanged and leaves the wheels alone.
// An empty input returns an empty output.
func (m *Machine) Process(text string) string {
	out := make([]byte, len(text))
	for k := 0; k < len(text); k++ {
		b := text[k]
		i, ok := alphabet.Index(alphabet.Upper(rune(b)))
		if !ok {
			out[k] = b
			continue
		}
		out[k] = byte('A' + m.encode(i))
	}

	return string(out)
}

// encode steps the wheels and carries one letter index through the signal path.
func (m *Machine) encode(i int) int {
	m.step()

	c := m.plugboard.Swap(i)
	for s := Right; s >= Left; s-- {
		c = m.rotors[s].Forward(c)
	}
	c = m.reflector.Reflect(c)
	for s := Left; s <= Right; s++ {
		c = m.rotors[s].Backward(c)
	}

	return m.plugboard.Swap(c)
}

// step advances the wheels for one keypress. The right notch is read before
// the right wheel moves; the middle notch is read after the middle wheel may
// have moved.
func (m *Machine) step() {
	if m.rotors[Right].AtNotch() {
		m.rotors[Middle].Step()
	}
	if m.rotors[Middle].AtNotch() {
		m.rotors[Left].Step()
	}
	m.rotors[Right].Step()
}

// Positions returns the current wheel positions in slot order.
func (m *Machine) Positions() [Slots]int {
	var p [Slots]int
	for s := range m.rotors {
		p[s] = m.rotors[s].Position()
	}

	return p
}

// Window returns the letters showing in the wheel windows, e.g. "ADU".
func (m *Machine) Window() string {
	var w [Slots]byte
	for s, p := range m.Positions() {
		w[s] = byte(alphabet.Letter(p))
	}

	return string(w[:])
}

// Reset returns the wheels to the positions the machine was built with.
func (m *Machine) Reset() {
	for s := range m.rotors {
		// Construction already validated these positions.
		_ = m.rotors[s].SetPosition(m.cfg.Positions[s])
	}
	m.logger.Debug("enigma: positions reset", slog.Any("positions", m.cfg.Positions))
}

// SetPositions reseeds the wheels to p. On error no wheel is moved.
// The construction-time positions used by Reset are not changed.
func (m *Machine) SetPositions(p [Slots]int) error {
	for s, v := range p {
		if !alphabet.InRange(v) {
			return fmt.Errorf("%w: slot %d: %w: %d", ErrConfiguration, s, rotor.ErrPositionOutOfRange, v)
		}
	}
	for s := range m.rotors {
		_ = m.rotors[s].SetPosition(p[s])
	}
	m.logger.Debug("enigma: positions set", slog.Any("positions", p))

	return nil
}

// Config returns a copy of the construction parameters.
func (m *Machine) Config() Config {
	return m.cfg.clone()
}

// Reflector returns the installed reflector.
func (m *Machine) Reflector() *reflector.Reflector {
	return m.reflector
}
