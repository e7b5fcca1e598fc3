package mask

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	fixNames = map[FixPolicy]string{
		FixNone:        "none",
		FixZero:        "zero",
		FixInterpolate: "interpolate",
	}
	statNames = map[SpikeStat]string{
		StatPercentile: "percentile",
		StatAverage:    "average",
	}
	datasetNames = map[SpikeDataset]string{
		DatasetDiff: "diff",
		DatasetData: "data",
		DatasetAll:  "all",
	}
)

func (f FixPolicy) valid() bool    { _, ok := fixNames[f]; return ok }
func (s SpikeStat) valid() bool    { _, ok := statNames[s]; return ok }
func (d SpikeDataset) valid() bool { _, ok := datasetNames[d]; return ok }

func (f FixPolicy) String() string    { return enumString(f, fixNames) }
func (s SpikeStat) String() string    { return enumString(s, statNames) }
func (d SpikeDataset) String() string { return enumString(d, datasetNames) }

// MarshalYAML writes the policy by name.
func (f FixPolicy) MarshalYAML() (any, error) { return f.String(), nil }

// MarshalYAML writes the statistic by name.
func (s SpikeStat) MarshalYAML() (any, error) { return s.String(), nil }

// MarshalYAML writes the dataset by name.
func (d SpikeDataset) MarshalYAML() (any, error) { return d.String(), nil }

// UnmarshalYAML accepts "none", "zero", "interpolate" or -1, 0, 1.
func (f *FixPolicy) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "fix", fixNames, f)
}

// UnmarshalYAML accepts "percentile", "average" or their integer codes.
func (s *SpikeStat) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "spike_stat", statNames, s)
}

// UnmarshalYAML accepts "diff", "data", "all" or their integer codes.
func (d *SpikeDataset) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "spike_dset", datasetNames, d)
}

func enumString[T ~int](v T, names map[T]string) string {
	if name, ok := names[v]; ok {
		return name
	}
	return strconv.Itoa(int(v))
}

func decodeEnum[T ~int](value *yaml.Node, key string, names map[T]string, out *T) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: %s must be a scalar (line %d)", ErrInvalidDef, key, value.Line)
	}

	text := strings.ToLower(strings.TrimSpace(value.Value))
	for v, name := range names {
		if name == text {
			*out = v
			return nil
		}
	}

	if n, err := strconv.Atoi(text); err == nil {
		if _, ok := names[T(n)]; ok {
			*out = T(n)
			return nil
		}
	}

	return fmt.Errorf("%w: unknown %s %q (line %d)", ErrInvalidDef, key, value.Value, value.Line)
}
