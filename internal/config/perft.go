package config

// PerftConfig holds settings for move-tree enumeration.
type PerftConfig struct {
	// Depth is the number of plies to enumerate
	Depth int

	// Divide reports the node count below each root move
	Divide bool

	// Stats classifies leaf moves (captures, checks, ...)
	Stats bool

	// Unique counts distinct leaf positions
	Unique bool

	// UniqueCapacity caps the distinct-position set (0 = unlimited)
	UniqueCapacity int

	// Workers is the number of goroutines (0 = one per CPU, 1 = serial)
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   1,
		Workers: 1,
	}
}
