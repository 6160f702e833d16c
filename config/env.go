package config

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/stochlab/sweep"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STOCHLAB_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays STOCHLAB_<FIELD> variables onto p, for example
// STOCHLAB_ALGORITHM, STOCHLAB_MIN_N or STOCHLAB_EDGE_PROBABILITY. Unset
// variables are ignored; unparsable numbers are errors.
func (p *Profile) ApplyEnv(lookup LookupFunc) error {
	strs := []struct {
		key string
		dst *string
	}{
		{"ALGORITHM", &p.Algorithm},
		{"STRATEGY", &p.Strategy},
		{"PARTITION", &p.Partition},
		{"METRIC", &p.Metric},
	}
	for _, s := range strs {
		if v, ok := lookup(EnvPrefix + s.key); ok {
			*s.dst = v
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"MIN_N", &p.MinN},
		{"MAX_N", &p.MaxN},
		{"STEP", &p.Step},
		{"TRIALS", &p.Trials},
		{"MAX_ATTEMPTS", &p.MaxAttempts},
	}
	for _, s := range ints {
		v, ok := lookup(EnvPrefix + s.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(s.key, v, err)
		}
		*s.dst = n
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"EDGE_PROBABILITY", &p.EdgeProbability},
		{"CONFIDENCE", &p.Confidence},
	}
	for _, s := range floats {
		v, ok := lookup(EnvPrefix + s.key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError(s.key, v, err)
		}
		*s.dst = f
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return envError("SEED", v, err)
		}
		p.Seed = n
	}

	return nil
}

func envError(key, val string, err error) error {
	return fmt.Errorf("config: %s%s=%q: %v: %w", EnvPrefix, key, val, err, sweep.ErrInvalidParameter)
}
