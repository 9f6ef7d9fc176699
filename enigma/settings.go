// SPDX-License-Identifier: MIT
// Package: lvenigma/enigma
//
// settings.go - YAML key sheets.
//
// A key sheet is the day's machine setting in a portable form:
//
//	rotors: [I, II, III]
//	positions: [0, 0, 0]
//	rings: [0, 0, 0]
//	plugboard: [AB, CD]
//	reflector: B
//
// Shape checks (lengths, ranges, letter tokens) run through validator struct
// tags; catalogue checks (rotor and reflector names) run when the sheet is
// turned into a Config. Both surface as ErrConfiguration.

package enigma

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvenigma/plugboard"
	"github.com/katalvlaran/lvenigma/reflector"
	"github.com/katalvlaran/lvenigma/rotor"
)

// validate is the shared struct validator; it caches per-type metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Settings is the serialisable form of a Config plus the reflector name.
type Settings struct {
	Rotors    []string `yaml:"rotors" validate:"len=3,dive,required"`
	Positions []int    `yaml:"positions" validate:"len=3,dive,min=0,max=25"`
	Rings     []int    `yaml:"rings" validate:"len=3,dive,min=0,max=25"`
	Plugboard []string `yaml:"plugboard,omitempty" validate:"max=13,dive,len=2,alpha,uppercase"`
	Reflector string   `yaml:"reflector,omitempty" validate:"omitempty,alphanum"`
}

// ParseSettings decodes a YAML key sheet and checks its shape.
// Unknown keys are rejected.
func ParseSettings(data []byte) (Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("%w: parse settings: %w", ErrConfiguration, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// LoadSettings reads and parses the key sheet at path.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings %q: %w", path, err)
	}

	return ParseSettings(data)
}

// Validate runs the struct-tag shape checks.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", ErrConfiguration, formatValidationError(err))
	}

	return nil
}

// Config converts the sheet into a Config. It does not look up rotors; New
// does that.
func (s Settings) Config() (Config, error) {
	if err := s.Validate(); err != nil {
		return Config{}, err
	}

	var cfg Config
	for slot := 0; slot < Slots; slot++ {
		cfg.Rotors[slot] = rotor.ID(s.Rotors[slot])
		cfg.Positions[slot] = s.Positions[slot]
		cfg.Rings[slot] = s.Rings[slot]
	}
	if len(s.Plugboard) > 0 {
		pairs, err := plugboard.ParsePairs(strings.Join(s.Plugboard, " "))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		cfg.Plugboard = pairs
	}

	return cfg, nil
}

// Options returns the machine options the sheet implies (its reflector).
func (s Settings) Options() ([]Option, error) {
	if s.Reflector == "" {
		return nil, nil
	}
	r, err := reflector.Lookup(s.Reflector)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return []Option{WithReflector(r)}, nil
}

// NewFromSettings builds a Machine from a key sheet. opts are applied after
// the sheet's own options, so they win.
func NewFromSettings(s Settings, opts ...Option) (*Machine, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	sheetOpts, err := s.Options()
	if err != nil {
		return nil, err
	}

	return New(cfg, append(sheetOpts, opts...)...)
}

// Settings returns the key sheet of the machine's construction parameters.
// A sheet names its reflector, so a machine built with a reflector outside
// the catalogue has no sheet; that fails with ErrConfiguration wrapping
// reflector.ErrUnknownReflector.
func (m *Machine) Settings() (Settings, error) {
	name := m.reflector.Name()
	known, err := reflector.Lookup(name)
	if err == nil && *known != *m.reflector {
		err = fmt.Errorf("%w: %q has non-catalogue wiring", reflector.ErrUnknownReflector, name)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("%w: settings: %w", ErrConfiguration, err)
	}

	s := Settings{
		Rotors:    make([]string, Slots),
		Positions: make([]int, Slots),
		Rings:     make([]int, Slots),
		Reflector: name,
	}
	for slot := 0; slot < Slots; slot++ {
		s.Rotors[slot] = string(m.cfg.Rotors[slot])
		s.Positions[slot] = m.cfg.Positions[slot]
		s.Rings[slot] = m.cfg.Rings[slot]
	}
	for _, p := range m.cfg.Plugboard {
		s.Plugboard = append(s.Plugboard, p.String())
	}

	return s, nil
}

// Marshal encodes the sheet as YAML.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// formatValidationError flattens validator errors into one line such as
// "Positions[1] failed max=25".
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		tag := fe.Tag()
		if fe.Param() != "" {
			tag += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), tag))
	}

	return strings.Join(parts, "; ")
}
