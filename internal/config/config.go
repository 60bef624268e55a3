// Package config provides YAML-based scene configuration with embedded
// defaults: tick interval, color palette and the help line.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vovakirdan/citywalk/internal/core"
)

// SceneConfig contains all configuration for the walking scene.
type SceneConfig struct {
	Tick     time.Duration `yaml:"tick" validate:"min=10ms,max=10s"`
	HelpText string        `yaml:"help_text" validate:"max=256"`
	Palette  Palette       `yaml:"palette"`
}

// Palette assigns a color to every element of the scene.
type Palette struct {
	Sky           core.Color `yaml:"sky" validate:"color"`
	Building      core.Color `yaml:"building" validate:"color"`
	Accent        core.Color `yaml:"accent" validate:"color"` // windows, spires, tower texture
	Figure        core.Color `yaml:"figure" validate:"color"`
	Ground        core.Color `yaml:"ground" validate:"color"`
	GroundTexture core.Color `yaml:"ground_texture" validate:"color"`
	Help          core.Color `yaml:"help" validate:"color"`
}

// Bounds for the tick interval. They match the validate tag on SceneConfig.Tick.
const (
	MinTick = 10 * time.Millisecond
	MaxTick = 10 * time.Second
)

// ErrInvalidTick is wrapped by Validate when the tick is out of range.
var ErrInvalidTick = errors.New("config: tick out of range")

// Validate checks the values a hand-written file could get wrong.
func (c SceneConfig) Validate() error {
	err := validateStruct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("config: %w", err)
	}
	for _, fe := range fieldErrs {
		if fe.StructField() == "Tick" {
			return fmt.Errorf("%w: %s (allowed %s to %s)", ErrInvalidTick, c.Tick, MinTick, MaxTick)
		}
	}
	fe := fieldErrs[0]
	return fmt.Errorf("config: invalid %s: %v (rule %q)", fe.Namespace(), fe.Value(), fe.Tag())
}
