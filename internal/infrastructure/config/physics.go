package config

import (
	"errors"
	"fmt"
)

// DefaultTickRate is the fixed simulation rate (ticks per second)
const DefaultTickRate = 60

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display DisplayConfig   `yaml:"display"`
	Physics PhysicsSettings `yaml:"physics"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
}

type PhysicsSettings struct {
	TickRate  int     `yaml:"tickRate"`  // ticks per second
	Gravity   float64 `yaml:"gravity"`   // units/s²
	FallSpeed float64 `yaml:"fallSpeed"` // units/s
}

// TickDuration returns the fixed timestep in seconds
func (c *PhysicsConfig) TickDuration() float64 {
	return 1.0 / float64(c.Physics.TickRate)
}

func (c *PhysicsConfig) applyDefaults() {
	if c.Physics.TickRate == 0 {
		c.Physics.TickRate = DefaultTickRate
	}
	if c.Display.Scale == 0 {
		c.Display.Scale = 1
	}
}

// Validate checks the physics settings
func (c *PhysicsConfig) Validate() error {
	if c.Physics.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %d", c.Physics.TickRate)
	}
	if c.Physics.Gravity < 0 {
		return errors.New("gravity must not be negative")
	}
	if c.Physics.FallSpeed < 0 {
		return errors.New("fallSpeed must not be negative")
	}
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	return nil
}
