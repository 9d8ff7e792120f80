package config

// Profile holds per-document analysis settings for a named group of
// documents. This allows customizing parse and report behavior for a
// subset of inputs without repeating CLI flags.
type Profile struct {
	// Host is the host name used to classify links as internal or external
	// for documents matched by this profile.
	Host string `yaml:"host,omitempty"`

	// Format overrides the report format for this profile.
	// Valid values: "simple", "json", "markdown". Empty means the global
	// format selection applies.
	Format string `yaml:"format,omitempty"`

	// Output overrides the report output file path for this profile.
	Output string `yaml:"output,omitempty"`

	// Concurrency overrides the global concurrency for this profile.
	// If zero, the global Concurrency is used.
	Concurrency int `yaml:"concurrency,omitempty"`

	// PreserveWhitespace disables whitespace collapsing for this profile.
	PreserveWhitespace bool `yaml:"preserveWhitespace,omitempty"`

	// SkipValidation disables structural validation for this profile.
	SkipValidation bool `yaml:"skipValidation,omitempty"`
}

// File represents the structure of the .pagescan configuration file.
type File struct {
	// Profiles maps profile names to their analysis settings.
	// Profile names are matched against the --profile CLI flag.
	Profiles map[string]Profile `yaml:"profiles,omitempty"`

	// Defaults contains default settings applied to all analyses
	// unless overridden in a named profile.
	Defaults Profile `yaml:"defaults,omitempty"`
}

// GetProfile returns the settings for a named profile.
// It merges the named profile with defaults.
func (cf *File) GetProfile(name string) Profile {
	// Start with defaults
	result := cf.Defaults

	// Override with profile-specific settings if present
	if profile, ok := cf.Profiles[name]; ok {
		if profile.Host != "" {
			result.Host = profile.Host
		}
		if profile.Format != "" {
			result.Format = profile.Format
		}
		if profile.Output != "" {
			result.Output = profile.Output
		}
		if profile.Concurrency != 0 {
			result.Concurrency = profile.Concurrency
		}
		if profile.PreserveWhitespace {
			result.PreserveWhitespace = true
		}
		if profile.SkipValidation {
			result.SkipValidation = true
		}
	}

	return result
}
