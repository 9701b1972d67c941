package experiment

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kleurgraaf/kleur/coloring"
)

// Sentinel errors for harness configuration.
var (
	// ErrBadTrialCount indicates a trial count below 1.
	ErrBadTrialCount = errors.New("experiment: trial count must be at least 1")
	// ErrBadVertexCount indicates a vertex count below 1.
	ErrBadVertexCount = errors.New("experiment: vertex count must be at least 1")
	// ErrBadEdgeProb indicates an edge probability outside [0,1].
	ErrBadEdgeProb = errors.New("experiment: edge probability out of range")
	// ErrBadInitialAssignment indicates a seed assignment whose length does
	// not match the vertex count or whose colors fall outside 0..colors-1.
	ErrBadInitialAssignment = errors.New("experiment: initial assignment length or color out of range")
)

// Duration wraps time.Duration so YAML configs can say "500ms" or "30s".
type Duration time.Duration

// UnmarshalYAML parses Go duration syntax.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("experiment: parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)

	return nil
}

// MarshalYAML renders Go duration syntax.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Config describes one experiment: the instance generator knobs, the engine
// selection, and the resource ceilings applied to every trial.
type Config struct {
	Trials        int      `yaml:"trials"`
	Vertices      int      `yaml:"vertices"`
	EdgeProb      float64  `yaml:"edge_prob"`
	Colors        int      `yaml:"colors"`
	Algorithm     string   `yaml:"algorithm"` // "BCTR" or "BEAM"
	Heuristic     string   `yaml:"heuristic"` // "DGR" or "MY"
	BeamWidth     int      `yaml:"beam_width"`
	MaxIterations int      `yaml:"max_iterations"`
	TimeLimit     Duration `yaml:"time_limit"`
	MemLimit      int64    `yaml:"mem_limit"`
	Seed          int64    `yaml:"seed"`

	// InitialAssignment optionally seeds the beam-search frontier of every
	// trial with this single assignment instead of random ones. Ignored by
	// backtracking. Must hold one color per vertex.
	InitialAssignment []int `yaml:"initial_assignment,omitempty"`
}

// DefaultConfig returns a small, fast experiment: 10 backtracking trials
// under DGR on sparse 30-vertex graphs.
func DefaultConfig() Config {
	return Config{
		Trials:        10,
		Vertices:      30,
		EdgeProb:      0.2,
		Colors:        3,
		Algorithm:     coloring.Backtracking.String(),
		Heuristic:     coloring.DGR.String(),
		BeamWidth:     coloring.DefaultBeamWidth,
		MaxIterations: coloring.DefaultMaxIterations,
		TimeLimit:     Duration(coloring.DefaultTimeLimit),
		MemLimit:      coloring.DefaultMemLimit,
		Seed:          0,
	}
}

// Validate checks generator knobs and resolves the engine selectors,
// failing fast on unknown ones.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("trials=%d: %w", c.Trials, ErrBadTrialCount)
	}
	if c.Vertices < 1 {
		return fmt.Errorf("vertices=%d: %w", c.Vertices, ErrBadVertexCount)
	}
	if c.EdgeProb < 0 || c.EdgeProb > 1 {
		return fmt.Errorf("edge_prob=%.4f: %w", c.EdgeProb, ErrBadEdgeProb)
	}
	if _, err := coloring.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if _, err := coloring.ParseHeuristic(c.Heuristic); err != nil {
		return err
	}
	if c.InitialAssignment != nil {
		if len(c.InitialAssignment) != c.Vertices {
			return fmt.Errorf("initial_assignment length %d, want %d: %w",
				len(c.InitialAssignment), c.Vertices, ErrBadInitialAssignment)
		}
		for v, col := range c.InitialAssignment {
			if col < 0 || col >= c.Colors {
				return fmt.Errorf("initial_assignment[%d]=%d outside 0..%d: %w",
					v, col, c.Colors-1, ErrBadInitialAssignment)
			}
		}
	}

	return nil
}

// engineOptions maps a validated Config to per-trial engine options; the
// caller supplies the trial-specific seed.
func (c Config) engineOptions(seed int64) (coloring.Options, error) {
	algo, err := coloring.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return coloring.Options{}, err
	}
	heur, err := coloring.ParseHeuristic(c.Heuristic)
	if err != nil {
		return coloring.Options{}, err
	}

	return coloring.Options{
		Algorithm:         algo,
		Colors:            c.Colors,
		Heuristic:         heur,
		BeamWidth:         c.BeamWidth,
		MaxIterations:     c.MaxIterations,
		TimeLimit:         time.Duration(c.TimeLimit),
		MemLimit:          c.MemLimit,
		Seed:              seed,
		InitialAssignment: c.InitialAssignment,
	}, nil
}

// LoadConfig reads and validates a YAML experiment description.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("experiment: read config: %w", err)
	}

	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("experiment: parse config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
