// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout bounds a single request including retries.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// UpdateConfig holds settings for the update check.
type UpdateConfig struct {
	HTTPConfig `yaml:",inline"`

	// URL returns a text body containing the latest version (X.Y.Z).
	URL string `json:"url" yaml:"url"`

	// PageURL is the download page offered when a newer version exists.
	PageURL string `json:"page_url" yaml:"page_url"`

	// Interval is the minimum time between silent startup checks (default 24h).
	Interval time.Duration `json:"interval" yaml:"interval"`

	// OnStart enables the silent startup check.
	OnStart bool `json:"on_start" yaml:"on_start"`
}

// Config is the resolved configuration handed to the session shell.
// Nothing in the shell reads process-wide state; everything it needs is here.
type Config struct {
	// Version is the running version, compared against the update feed.
	Version string `json:"version" yaml:"version"`

	// OutputDir receives saved markup (.txt) and records (.json).
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// StateFile stores the timestamp of the last update check.
	StateFile string `json:"state_file" yaml:"state_file"`

	// ThemesFile optionally extends the built-in theme catalog.
	ThemesFile string `json:"themes_file,omitempty" yaml:"themes_file,omitempty"`

	// NoColor disables terminal colors and screen clearing.
	NoColor bool `json:"no_color" yaml:"no_color"`

	Update UpdateConfig `json:"update" yaml:"update"`
}
