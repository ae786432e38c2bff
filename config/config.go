// Package config parses the configuration surface named in spec §6:
// inflevel, the keep-bits policy, the gradient policy's threshold and
// tolerance, and the confidence used by the free-entropy filter.
// Values may come from a YAML file, from flags, or from defaults;
// cmd/ncbitround layers flags over a YAML file over these defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	bitrounding "github.com/huanglangwen/bitrounding-c"
)

// file is the on-disk YAML shape. Field names match the CLI flags in
// cmd/ncbitround, with underscores where the flags use hyphens
// (gradient_threshold vs --gradient-threshold).
type file struct {
	Inflevel   *float64 `yaml:"inflevel"`
	Policy     *string  `yaml:"policy"` // "default", "monotonic", or "gradient"
	Threshold  *float64 `yaml:"gradient_threshold"`
	Tolerance  *float64 `yaml:"gradient_tolerance"`
	Confidence *float64 `yaml:"confidence"`
}

// Load reads a YAML configuration file and overlays it onto
// bitrounding.DefaultConfig(). Fields absent from the file keep their
// default value.
func Load(path string) (bitrounding.Config, error) {
	cfg := bitrounding.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return bitrounding.Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return bitrounding.Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if f.Inflevel != nil {
		cfg.Inflevel = *f.Inflevel
	}
	if f.Threshold != nil {
		cfg.Policy.Threshold = *f.Threshold
	}
	if f.Tolerance != nil {
		cfg.Policy.Tolerance = *f.Tolerance
	}
	if f.Confidence != nil {
		cfg.Confidence = *f.Confidence
	}
	if f.Policy != nil {
		kind, err := ParsePolicyKind(*f.Policy)
		if err != nil {
			return bitrounding.Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
		cfg.Policy.Kind = kind
	}

	if err := cfg.Validate(); err != nil {
		return bitrounding.Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// ParsePolicyKind maps a config/flag string to a bitrounding policy kind.
func ParsePolicyKind(s string) (bitrounding.Kind, error) {
	switch s {
	case "default", "":
		return bitrounding.PolicyDefault, nil
	case "monotonic":
		return bitrounding.PolicyMonotonic, nil
	case "gradient":
		return bitrounding.PolicyGradient, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (want default, monotonic, or gradient)", s)
	}
}
