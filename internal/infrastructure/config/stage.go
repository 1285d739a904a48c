package config

import (
	"fmt"

	"github.com/ilan-segal/platform-fighter/internal/geom"
)

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	PlayerSpawn VectorConfig     `yaml:"playerSpawn"`
	Colliders   []ColliderConfig `yaml:"colliders"`
}

type VectorConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts to a geom vector
func (v VectorConfig) Vec() geom.Vec2 {
	return geom.V(v.X, v.Y)
}

// ColliderConfig describes one static segment. Normal need not be unit
// length; it is normalised when the collider is built.
type ColliderConfig struct {
	Centre  VectorConfig `yaml:"centre"`
	Normal  VectorConfig `yaml:"normal"`
	Breadth float64      `yaml:"breadth"`
}

// Collider builds the geom collider
func (c ColliderConfig) Collider() geom.Collider {
	return geom.NewCollider(c.Centre.Vec(), c.Normal.Vec(), c.Breadth)
}

// Validate checks every collider
func (c *StageConfig) Validate() error {
	for i, col := range c.Colliders {
		if col.Breadth <= 0 {
			return fmt.Errorf("collider %d: breadth must be positive, got %g", i, col.Breadth)
		}
		if col.Normal.X == 0 && col.Normal.Y == 0 {
			return fmt.Errorf("collider %d: normal must not be zero", i)
		}
	}
	return nil
}
