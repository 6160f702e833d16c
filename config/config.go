// Package config loads sweep profiles.
//
// Precedence, lowest first: built-in defaults, a YAML profile file,
// STOCHLAB_* environment variables (optionally seeded from .env files),
// then whatever the caller overrides afterwards (CLI flags).
//
// A profile file looks like:
//
//	algorithm: graph_bfs
//	min_n: 100
//	max_n: 2000
//	step: 10
//	trials: 100
//	edge_probability: 0.1
//	strategy: spanning_tree
//	seed: 42
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stochlab/builder"
	"github.com/katalvlaran/stochlab/sorting"
	"github.com/katalvlaran/stochlab/sweep"
	"github.com/katalvlaran/stochlab/trial"
)

// Profile is the file and environment form of a sweep.Config.
type Profile struct {
	Algorithm       string  `yaml:"algorithm" validate:"required,oneof=merge_sort quicksort graph_bfs"`
	MinN            int     `yaml:"min_n" validate:"min=1"`
	MaxN            int     `yaml:"max_n" validate:"gtefield=MinN"`
	Step            int     `yaml:"step" validate:"min=1"`
	Trials          int     `yaml:"trials" validate:"min=1"`
	EdgeProbability float64 `yaml:"edge_probability" validate:"gt=0,lte=1"`
	Seed            int64   `yaml:"seed"`
	Confidence      float64 `yaml:"confidence" validate:"gt=0,lt=1"`
	Strategy        string  `yaml:"strategy" validate:"omitempty,oneof=spanning_tree rejection"`
	Partition       string  `yaml:"partition" validate:"omitempty,oneof=le lt"`
	Metric          string  `yaml:"metric" validate:"omitempty,oneof=comparisons array_accesses assignments nodes_visited edges_examined total_edges height"`
	MaxAttempts     int     `yaml:"max_attempts" validate:"min=0"`
}

// Default returns the profile of sweep.DefaultConfig.
func Default() Profile {
	c := sweep.DefaultConfig()

	return Profile{
		Algorithm:       string(c.Kind),
		MinN:            c.MinN,
		MaxN:            c.MaxN,
		Step:            c.Step,
		Trials:          c.Trials,
		EdgeProbability: c.EdgeProbability,
		Confidence:      c.Level,
		Strategy:        builder.SpanningTree.String(),
		Partition:       sorting.PartitionLE.String(),
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty) and then with STOCHLAB_* environment variables, validated.
func Load(path string) (Profile, error) {
	p := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Profile{}, fmt.Errorf("config: open %s: %w", path, err)
		}
		defer f.Close()
		if err := p.Decode(f); err != nil {
			return Profile{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := p.ApplyEnv(os.LookupEnv); err != nil {
		return Profile{}, err
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// Decode overlays YAML from r onto p. Unknown keys are rejected; an empty
// document leaves p unchanged.
func (p *Profile) Decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w: %w", err, sweep.ErrInvalidParameter)
	}

	return nil
}

// LoadDotEnv loads .env style files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validate normalises algorithm aliases and checks field constraints, then
// the cross-field rules of sweep.Config.Validate.
func (p *Profile) Validate() error {
	if k, err := trial.ParseKind(p.Algorithm); err == nil {
		p.Algorithm = string(k)
	}
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Field(), tagWithParam(fe), fe.Value()))
			}
			return fmt.Errorf("config: %s: %w", strings.Join(msgs, "; "), sweep.ErrInvalidParameter)
		}
		return fmt.Errorf("config: %w: %w", err, sweep.ErrInvalidParameter)
	}
	cfg, err := p.Sweep()
	if err != nil {
		return err
	}

	return cfg.Validate()
}

func tagWithParam(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}

	return fe.Tag() + "=" + fe.Param()
}

// Sweep converts p into a sweep.Config. It parses names but does not run
// the full validation; use Validate for that.
func (p Profile) Sweep() (sweep.Config, error) {
	kind, err := trial.ParseKind(p.Algorithm)
	if err != nil {
		return sweep.Config{}, fmt.Errorf("config: %w", err)
	}
	strategy, err := builder.ParseStrategy(p.Strategy)
	if err != nil {
		return sweep.Config{}, fmt.Errorf("config: %w: %w", err, sweep.ErrInvalidParameter)
	}
	partition, err := sorting.ParsePartition(p.Partition)
	if err != nil {
		return sweep.Config{}, fmt.Errorf("config: %w: %w", err, sweep.ErrInvalidParameter)
	}

	return sweep.Config{
		Kind:            kind,
		MinN:            p.MinN,
		MaxN:            p.MaxN,
		Step:            p.Step,
		Trials:          p.Trials,
		EdgeProbability: p.EdgeProbability,
		Metric:          trial.Metric(p.Metric),
		Seed:            p.Seed,
		Level:           p.Confidence,
		Strategy:        strategy,
		Partition:       partition,
		MaxAttempts:     p.MaxAttempts,
	}, nil
}
