package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(s string) *ConfigBuilder {
	b.cfg.FEN = s
	return b
}

// WithMoves sets the moves played before counting.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Moves = moves
	return b
}

// WithDepth sets the enumeration depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithDivide enables per-root-move counts.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithStats enables leaf move classification.
func (b *ConfigBuilder) WithStats(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Stats = enabled
	return b
}

// WithUnique enables distinct-position counting with an optional cap.
func (b *ConfigBuilder) WithUnique(enabled bool, capacity int) *ConfigBuilder {
	b.cfg.Perft.Unique = enabled
	b.cfg.Perft.UniqueCapacity = capacity
	return b
}

// WithWorkers sets the number of worker goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithReferenceCheck enables comparison against the reference generator.
func (b *ConfigBuilder) WithReferenceCheck(enabled bool) *ConfigBuilder {
	b.cfg.VerifyReference = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithTiming controls whether timings are reported.
func (b *ConfigBuilder) WithTiming(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowTiming = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
