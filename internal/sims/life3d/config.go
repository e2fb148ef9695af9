package life3d

import "strconv"

// Config holds the lattice dimension and rule parameters for the 3D automaton.
// Rule values are deliberately not validated: the engine applies whatever the
// arithmetic implies, and frontends decide how strictly to clamp their inputs.
type Config struct {
	// GridSize is the cubic lattice edge length; the grid has GridSize³ cells.
	GridSize int
	// BirthRule is the exact neighbor count that brings a dead cell to life.
	BirthRule int
	// SurvivalMin and SurvivalMax bound, inclusively, the neighbor counts at
	// which a live cell stays alive.
	SurvivalMin int
	SurvivalMax int
	// Periodic selects toroidal wraparound at the lattice faces; when false,
	// neighbor offsets falling outside the lattice are skipped.
	Periodic bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		GridSize:    20,
		BirthRule:   4,
		SurvivalMin: 4,
		SurvivalMax: 5,
		Periodic:    true,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.GridSize = parsed
		}
	}
	if v, ok := cfg["birth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.BirthRule = parsed
		}
	}
	if v, ok := cfg["smin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SurvivalMin = parsed
		}
	}
	if v, ok := cfg["smax"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SurvivalMax = parsed
		}
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Periodic = parsed
		}
	}
	return c
}

// ConfigPatch is a partial configuration update. Nil fields retain the
// engine's current value.
type ConfigPatch struct {
	GridSize    *int
	BirthRule   *int
	SurvivalMin *int
	SurvivalMax *int
	Periodic    *bool
}

func (c Config) merge(p ConfigPatch) Config {
	if p.GridSize != nil {
		c.GridSize = *p.GridSize
	}
	if p.BirthRule != nil {
		c.BirthRule = *p.BirthRule
	}
	if p.SurvivalMin != nil {
		c.SurvivalMin = *p.SurvivalMin
	}
	if p.SurvivalMax != nil {
		c.SurvivalMax = *p.SurvivalMax
	}
	if p.Periodic != nil {
		c.Periodic = *p.Periodic
	}
	return c
}
