package models

// ExportConfig contains configuration for re-exporting a loaded config
type ExportConfig struct {
	// Input/Output
	InputPath  string
	OutputPath string
	Format     string // yaml, json or toml
	Version    string // Config version recorded on load

	// Compression
	Gzip bool

	// Signing
	GPGKeyPath    string
	GPGPassphrase string
}

// FilterConfig contains configuration for classifying a directory of RPMs
type FilterConfig struct {
	ConfigPath string
	InputDir   string
	Version    string
	ShowAll    bool // Also list packages neither included nor excluded
}
