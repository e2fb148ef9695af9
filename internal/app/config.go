package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Sim      string  `json:"sim"`
	Scale    int     `json:"scale"`
	TPS      int     `json:"tps"`
	StepsPS  int     `json:"steps_per_second"`
	Seed     int64   `json:"seed"`
	GridSize int     `json:"grid_size"`
	Birth    int     `json:"birth"`
	SMin     int     `json:"survival_min"`
	SMax     int     `json:"survival_max"`
	Wrap     bool    `json:"wrap"`
	Density  float64 `json:"density"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life3d",
		Scale:    16,
		TPS:      60,
		StepsPS:  8,
		Seed:     42,
		GridSize: 20,
		Birth:    4,
		SMin:     4,
		SMax:     5,
		Wrap:     true,
		Density:  0.2,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "display ticks per second")
	fs.IntVar(&c.StepsPS, "sps", c.StepsPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.GridSize, "n", c.GridSize, "cubic lattice edge length")
	fs.IntVar(&c.Birth, "birth", c.Birth, "exact neighbor count for birth")
	fs.IntVar(&c.SMin, "smin", c.SMin, "survival range lower bound")
	fs.IntVar(&c.SMax, "smax", c.SMax, "survival range upper bound")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "periodic (toroidal) boundaries")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability on reset")
}

// LoadFile merges values from a JSON file over the current configuration.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// SimOptions renders the rule settings as the string map the sim registry
// factories consume.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"n":       strconv.Itoa(c.GridSize),
		"birth":   strconv.Itoa(c.Birth),
		"smin":    strconv.Itoa(c.SMin),
		"smax":    strconv.Itoa(c.SMax),
		"wrap":    strconv.FormatBool(c.Wrap),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
}
