package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// ShowNotation adds the short algebraic form to divide lines
	ShowNotation bool

	// ShowBoard prints the starting position as a diagram
	ShowBoard bool

	// ShowTiming includes elapsed time and nodes per second
	ShowTiming bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     Text,
		ShowTiming: true,
	}
}
