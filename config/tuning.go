package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML form of the controller and physics values that can be
// adjusted without rebuilding. Absent keys keep their current value.
type Tuning struct {
	WalkSpeed          *float64 `yaml:"walkSpeed"`
	RunSpeed           *float64 `yaml:"runSpeed"`
	JumpImpulse        *float64 `yaml:"jumpImpulse"`
	Mass               *float64 `yaml:"mass"`
	MovementSmoothing  *float64 `yaml:"movementSmoothing"`
	GroundCheckRadius  *float64 `yaml:"groundCheckRadius"`
	GroundCheckOffsetY *float64 `yaml:"groundCheckOffsetY"`
	GroundLayer        *string  `yaml:"groundLayer"`
	VerticalDrive      *bool    `yaml:"verticalDrive"`
	Gravity            *float64 `yaml:"gravity"`
	Friction           *float64 `yaml:"friction"`
	MaxFallSpeed       *float64 `yaml:"maxFallSpeed"`
}

// ParseTuning decodes and validates a YAML tuning document.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return &t, nil
}

// LoadTuning reads a tuning file from disk.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

// Validate checks that every present value is in range.
func (t *Tuning) Validate() error {
	var errs []error
	positive := func(name string, v *float64) {
		if v != nil && *v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, *v))
		}
	}
	nonNegative := func(name string, v *float64) {
		if v != nil && *v < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %v", name, *v))
		}
	}

	nonNegative("walkSpeed", t.WalkSpeed)
	nonNegative("runSpeed", t.RunSpeed)
	nonNegative("jumpImpulse", t.JumpImpulse)
	positive("mass", t.Mass)
	positive("groundCheckRadius", t.GroundCheckRadius)
	nonNegative("gravity", t.Gravity)
	nonNegative("friction", t.Friction)
	positive("maxFallSpeed", t.MaxFallSpeed)

	if t.MovementSmoothing != nil && (*t.MovementSmoothing < 0 || *t.MovementSmoothing > 1) {
		errs = append(errs, fmt.Errorf("movementSmoothing must be within [0, 1], got %v", *t.MovementSmoothing))
	}
	if t.GroundLayer != nil && *t.GroundLayer == "" {
		errs = append(errs, errors.New("groundLayer must not be empty"))
	}

	return errors.Join(errs...)
}

// Apply copies the present values into the global configuration.
func (t *Tuning) Apply() {
	setFloat(&Controller.WalkSpeed, t.WalkSpeed)
	setFloat(&Controller.RunSpeed, t.RunSpeed)
	setFloat(&Controller.JumpImpulse, t.JumpImpulse)
	setFloat(&Controller.Mass, t.Mass)
	setFloat(&Controller.MovementSmoothing, t.MovementSmoothing)
	setFloat(&Controller.GroundCheckRadius, t.GroundCheckRadius)
	setFloat(&Controller.GroundCheckOffsetY, t.GroundCheckOffsetY)
	if t.GroundLayer != nil {
		Controller.GroundLayer = *t.GroundLayer
	}
	if t.VerticalDrive != nil {
		Controller.VerticalDrive = *t.VerticalDrive
	}
	setFloat(&Physics.Gravity, t.Gravity)
	setFloat(&Physics.Friction, t.Friction)
	setFloat(&Physics.MaxFallSpeed, t.MaxFallSpeed)
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
