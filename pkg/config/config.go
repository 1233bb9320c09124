// pkg/config/config.go

// Package config loads race scenario settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrNegativeCars indicates a scenario with a negative car count.
var ErrNegativeCars = errors.New("cars must be non-negative")

// ErrNegativeSteps indicates a scenario with a negative step count.
var ErrNegativeSteps = errors.New("steps must be non-negative")

// ErrNegativeInitial indicates a negative starting position.
var ErrNegativeInitial = errors.New("initial position must be non-negative")

// ErrInvalidStall indicates a stall probability outside [0,1).
var ErrInvalidStall = errors.New("stall probability must be in [0,1)")

// ErrInvalidMark indicates a mark that is not exactly one character.
var ErrInvalidMark = errors.New("mark must be a single character")

// Config describes one race scenario.
type Config struct {
	// Cars is the number of entities on the track.
	Cars int `yaml:"cars"`

	// Steps is the simulation step budget.
	Steps int `yaml:"steps"`

	// InitialPosition is every car's starting progress.
	InitialPosition int `yaml:"initial_position"`

	// StallProbability is the chance a car stays put on a step.
	StallProbability float64 `yaml:"stall_probability"`

	// Mark is the character repeated to draw a car's progress.
	Mark string `yaml:"mark"`

	// FinishDistance marks a car as finished once reached. Zero disables
	// the finish line.
	FinishDistance int `yaml:"finish_distance"`

	// Heats is the number of independent races to run. Zero or one means a
	// single race.
	Heats int `yaml:"heats"`

	// Seed1 and Seed2 seed the randomness source. Both zero means a fresh
	// crypto seed is drawn per run.
	Seed1 uint64 `yaml:"seed1"`
	Seed2 uint64 `yaml:"seed2"`
}

// Default returns the worked-example scenario: three cars, five steps,
// 0.3 stall probability, '-' mark.
func Default() Config {
	return Config{
		Cars:             3,
		Steps:            5,
		InitialPosition:  1,
		StallProbability: 0.3,
		Mark:             "-",
	}
}

// Load reads a scenario from path, applying defaults for absent fields.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the scenario's bounds.
func (c Config) Validate() error {
	if c.Cars < 0 {
		return ErrNegativeCars
	}
	if c.Steps < 0 {
		return ErrNegativeSteps
	}
	if c.InitialPosition < 0 {
		return ErrNegativeInitial
	}
	if c.StallProbability < 0 || c.StallProbability >= 1 {
		return ErrInvalidStall
	}
	if utf8.RuneCountInString(c.Mark) != 1 {
		return ErrInvalidMark
	}
	return nil
}

// MarkRune returns the mark as a rune. Call Validate first.
func (c Config) MarkRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Mark)
	return r
}
