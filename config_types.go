package bitrounding

import "fmt"

// Config is the fully-resolved configuration surface named in spec §6:
// inflevel, the keep-bits policy (and its gradient parameters, when
// applicable), and the confidence constant behind the free-entropy
// noise floor. Package config parses this from YAML and flags; this
// type is what the driver actually consumes.
type Config struct {
	// Inflevel is the CDF threshold in [0, 1]; typical value 0.9999.
	Inflevel float64

	// Policy selects and parameterizes the NSB selector.
	Policy Policy

	// Confidence is the binomial confidence behind the free-entropy
	// filter, forwarded into bitinfo.MutualInformation on every
	// analysis call. spec §6 gives 0.99 as the typical value, not a
	// fixed constant; it is user-overridable via the "confidence" YAML
	// key and the "--confidence" flag.
	Confidence float64
}

// DefaultConfig returns the configuration spec §6 describes as typical.
func DefaultConfig() Config {
	return Config{
		Inflevel:   0.9999,
		Policy:     Policy{Kind: PolicyDefault, Threshold: 0.7, Tolerance: 0.001},
		Confidence: 0.99,
	}
}

// Validate checks the configuration surface's documented ranges:
// inflevel in [0,1], confidence in (0,1), gradient threshold in [0,1],
// gradient tolerance in (0,1) (only checked when Policy.Kind is
// PolicyGradient).
func (c Config) Validate() error {
	if c.Inflevel < 0.0 || c.Inflevel > 1.0 {
		return fmt.Errorf("inflevel %v out of range [0, 1]", c.Inflevel)
	}
	if c.Confidence <= 0.0 || c.Confidence >= 1.0 {
		return fmt.Errorf("confidence %v out of range (0, 1)", c.Confidence)
	}
	if c.Policy.Kind == PolicyGradient {
		if c.Policy.Threshold < 0.0 || c.Policy.Threshold > 1.0 {
			return fmt.Errorf("gradient threshold %v out of range [0, 1]", c.Policy.Threshold)
		}
		if c.Policy.Tolerance <= 0.0 || c.Policy.Tolerance >= 1.0 {
			return fmt.Errorf("gradient tolerance %v out of range (0, 1)", c.Policy.Tolerance)
		}
	}
	return nil
}
