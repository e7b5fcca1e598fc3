package qc

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-qc/qc/mask"
)

// Config is the on-disk form of a QC run: the detection mode plus the
// parameters of mask.Def at the top level.
//
//	mode: both
//	drop_thr: 4
//	fix: interpolate
//	spike_stat: percentile
//	spike_dset: diff
type Config struct {
	Mode Mode     `yaml:"mode"`
	Def  mask.Def `yaml:",inline"`
}

// DefaultConfig returns single-series detection with mask.DefaultDef.
func DefaultConfig() Config {
	return Config{Mode: ModeSingle, Def: mask.DefaultDef()}
}

// ParseConfig decodes YAML over DefaultConfig, so absent keys keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("qc: parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path. An empty path yields
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("qc: load config: %w", err)
	}

	return ParseConfig(data)
}

// Validate checks the mode and the definition.
func (c Config) Validate() error {
	if !c.Mode.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(c.Mode))
	}
	return c.Def.Validate()
}
