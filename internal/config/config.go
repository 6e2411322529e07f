// Package config provides configuration for the perft tool.
package config

import (
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/fen"
)

// Limits enforced by Validate.
const (
	MaxDepth   = 12
	MaxWorkers = 256
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Starting position and moves played from it before counting
	FEN   string
	Moves []string

	// VerifyReference compares the divide against the reference generator
	VerifyReference bool

	Perft  *PerftConfig
	Output *OutputConfig

	// File handling
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		FEN:        fen.InitialFEN,
		Perft:      NewPerftConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// EffectiveWorkers resolves a worker count of 0 to the number of CPUs.
func (c *Config) EffectiveWorkers() int {
	if c.Perft.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Perft.Workers
}

// Validate checks the settings that flag parsing cannot. Errors wrap
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Perft.Depth < 0 || c.Perft.Depth > MaxDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "depth %d outside [0, %d]", c.Perft.Depth, MaxDepth)
	}
	if c.Perft.Workers < 0 || c.Perft.Workers > MaxWorkers {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d outside [0, %d]", c.Perft.Workers, MaxWorkers)
	}
	if c.Perft.UniqueCapacity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "negative unique capacity %d", c.Perft.UniqueCapacity)
	}
	if c.Perft.Divide && c.Perft.Depth == 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "divide needs depth of at least 1")
	}
	if _, err := fen.Parse(c.FEN); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "starting position: %v", err)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "output and log writers must be set")
	}
	return nil
}
