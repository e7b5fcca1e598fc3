package qc

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects which spike detectors Extended runs.
type Mode int

const (
	// ModeSingle detects spikes within each series on its own.
	ModeSingle Mode = iota
	// ModeCross detects spikes relative to all series. All series must
	// have the same length.
	ModeCross
	// ModeBoth runs both detectors. On series of different lengths it
	// falls back to ModeSingle.
	ModeBoth
)

var modeNames = map[Mode]string{
	ModeSingle: "single",
	ModeCross:  "cross",
	ModeBoth:   "both",
}

func (m Mode) valid() bool {
	_, ok := modeNames[m]
	return ok
}

func (m Mode) single() bool { return m == ModeSingle || m == ModeBoth }
func (m Mode) cross() bool  { return m == ModeCross || m == ModeBoth }

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return strconv.Itoa(int(m))
}

// ParseMode accepts a mode name or its integer code.
func ParseMode(s string) (Mode, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == text {
			return m, nil
		}
	}

	if n, err := strconv.Atoi(text); err == nil && Mode(n).valid() {
		return Mode(n), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// MarshalYAML writes the mode by name.
func (m Mode) MarshalYAML() (any, error) { return m.String(), nil }

// UnmarshalYAML accepts "single", "cross", "both" or their integer codes.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: mode must be a scalar (line %d)", ErrInvalidMode, value.Line)
	}

	parsed, err := ParseMode(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}

	*m = parsed
	return nil
}
