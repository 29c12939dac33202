package source

// Config holds configuration for the property sources.
type Config struct {
	// File is the local property file (TOML or YAML).
	File string `mapstructure:"file" default:"foodfunk.toml"`
	// Watch reloads tables when File changes.
	Watch bool `mapstructure:"watch" default:"true"`
	// DebounceMillis collapses bursts of file events.
	DebounceMillis int `mapstructure:"debounce_millis" default:"250"`
	// UseDatabase layers property_overrides rows on top of the file.
	UseDatabase bool `mapstructure:"use_database" default:"false"`
}
