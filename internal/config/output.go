package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowTiming includes elapsed time and nodes per second
	ShowTiming bool

	// ShowBoard prints the starting board diagram before the report
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowTiming: true,
	}
}
