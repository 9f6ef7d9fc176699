package enigma_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvenigma/enigma"
	"github.com/katalvlaran/lvenigma/plugboard"
	"github.com/katalvlaran/lvenigma/reflector"
	"github.com/katalvlaran/lvenigma/rotor"
)

const sheet = `
rotors: [I, II, III]
positions: [0, 0, 0]
rings: [0, 0, 0]
plugboard: [AB, CD]
reflector: B
`

// TestParseSettings decodes a key sheet into the reference configuration.
func TestParseSettings(t *testing.T) {
	s, err := enigma.ParseSettings([]byte(sheet))
	require.NoError(t, err)

	cfg, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, [3]rotor.ID{rotor.I, rotor.II, rotor.III}, cfg.Rotors)
	assert.Equal(t, [3]int{0, 0, 0}, cfg.Positions)
	assert.Equal(t, []plugboard.Pair{{'A', 'B'}, {'C', 'D'}}, cfg.Plugboard)

	m, err := enigma.NewFromSettings(s)
	require.NoError(t, err)
	assert.Equal(t, "IMTNB", m.Process("HELLO"))
}

// TestLoadSettings reads a sheet from disk.
func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sheet), 0o600))

	s, err := enigma.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"AB", "CD"}, s.Plugboard)

	_, err = enigma.LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestSettings_RoundTrip marshals a machine's sheet and rebuilds it.
func TestSettings_RoundTrip(t *testing.T) {
	cfg := enigma.Config{
		Rotors:    [3]rotor.ID{rotor.IV, rotor.II, rotor.V},
		Positions: [3]int{6, 22, 20},
		Rings:     [3]int{1, 2, 3},
		Plugboard: []plugboard.Pair{{'A', 'Z'}, {'N', 'O'}},
	}
	orig, err := enigma.New(cfg, enigma.WithReflector(reflector.C))
	require.NoError(t, err)

	ks, err := orig.Settings()
	require.NoError(t, err)
	data, err := ks.Marshal()
	require.NoError(t, err)

	s, err := enigma.ParseSettings(data)
	require.NoError(t, err)
	assert.Equal(t, "C", s.Reflector)

	rebuilt, err := enigma.NewFromSettings(s)
	require.NoError(t, err)
	assert.Equal(t, cfg, rebuilt.Config())
	assert.Equal(t, orig.Process("ROUNDTRIP"), rebuilt.Process("ROUNDTRIP"))
}

// TestSettings_CustomReflector refuses to write a sheet that could not be
// loaded back: the reflector must be a catalogue entry, name and wiring.
func TestSettings_CustomReflector(t *testing.T) {
	cases := []struct {
		name   string
		refl   string
		wiring string
	}{
		{"name outside catalogue", "UKW-X", "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
		{"alphanumeric custom name", "Custom", "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
		{"catalogue name with other wiring", "B", "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := reflector.New(tc.refl, tc.wiring)
			require.NoError(t, err)
			m, err := enigma.New(enigma.Config{Rotors: [3]rotor.ID{rotor.I, rotor.II, rotor.III}}, enigma.WithReflector(r))
			require.NoError(t, err)

			_, err = m.Settings()
			assert.ErrorIs(t, err, enigma.ErrConfiguration)
			assert.ErrorIs(t, err, reflector.ErrUnknownReflector)
		})
	}

	// A freshly built copy of a catalogue reflector is still that reflector.
	r, err := reflector.New("C", "FVPJIAOYEDRZXWGCTKUQSBNMHL")
	require.NoError(t, err)
	m, err := enigma.New(enigma.Config{Rotors: [3]rotor.ID{rotor.I, rotor.II, rotor.III}}, enigma.WithReflector(r))
	require.NoError(t, err)
	s, err := m.Settings()
	require.NoError(t, err)
	data, err := s.Marshal()
	require.NoError(t, err)
	_, err = enigma.ParseSettings(data)
	require.NoError(t, err)
}

// TestNewFromSettings_OptionOverride lets caller options beat the sheet.
func TestNewFromSettings_OptionOverride(t *testing.T) {
	s, err := enigma.ParseSettings([]byte(sheet))
	require.NoError(t, err)

	m, err := enigma.NewFromSettings(s, enigma.WithReflector(reflector.C))
	require.NoError(t, err)
	assert.Equal(t, "C", m.Reflector().Name())
}

// TestParseSettings_Errors covers shape, syntax and catalogue failures.
func TestParseSettings_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"syntax", "rotors: [I, II"},
		{"unknown key", sheet + "extra: 1\n"},
		{"two rotors", "rotors: [I, II]\npositions: [0,0,0]\nrings: [0,0,0]\n"},
		{"missing rings", "rotors: [I, II, III]\npositions: [0,0,0]\n"},
		{"position range", "rotors: [I, II, III]\npositions: [0,26,0]\nrings: [0,0,0]\n"},
		{"ring negative", "rotors: [I, II, III]\npositions: [0,0,0]\nrings: [0,-1,0]\n"},
		{"blank rotor", "rotors: [I, '', III]\npositions: [0,0,0]\nrings: [0,0,0]\n"},
		{"long token", "rotors: [I, II, III]\npositions: [0,0,0]\nrings: [0,0,0]\nplugboard: [ABC]\n"},
		{"lower token", "rotors: [I, II, III]\npositions: [0,0,0]\nrings: [0,0,0]\nplugboard: [ab]\n"},
		{"digit token", "rotors: [I, II, III]\npositions: [0,0,0]\nrings: [0,0,0]\nplugboard: [A1]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := enigma.ParseSettings([]byte(tc.doc))
			assert.ErrorIs(t, err, enigma.ErrConfiguration)
		})
	}
}

// TestNewFromSettings_Errors covers failures only the catalogue or the
// plugboard can detect.
func TestNewFromSettings_Errors(t *testing.T) {
	base := enigma.Settings{
		Rotors:    []string{"I", "II", "III"},
		Positions: []int{0, 0, 0},
		Rings:     []int{0, 0, 0},
	}

	unknown := base
	unknown.Rotors = []string{"I", "VI", "III"}
	_, err := enigma.NewFromSettings(unknown)
	assert.ErrorIs(t, err, enigma.ErrConfiguration)
	assert.ErrorIs(t, err, rotor.ErrUnknownRotor)

	badRef := base
	badRef.Reflector = "A"
	_, err = enigma.NewFromSettings(badRef)
	assert.ErrorIs(t, err, enigma.ErrConfiguration)
	assert.ErrorIs(t, err, reflector.ErrUnknownReflector)

	dup := base
	dup.Plugboard = []string{"AB", "BC"}
	_, err = enigma.NewFromSettings(dup)
	assert.ErrorIs(t, err, enigma.ErrConfiguration)
	assert.ErrorIs(t, err, plugboard.ErrDuplicateLetter)

	short := base
	short.Positions = []int{0}
	_, err = enigma.NewFromSettings(short)
	assert.ErrorIs(t, err, enigma.ErrConfiguration)
}
