package history

import "path/filepath"

// DefaultFile is the history file name inside the data directory.
const DefaultFile = "binaries.txt"

// Config holds history store initialization parameters.
type Config struct {
	Dir      string `json:"dir,omitempty" env:"DATA_DIR"`      // Data directory; empty disables history.
	File     string `json:"file,omitempty" env:"HISTORY_FILE"` // File name inside Dir.
	Matching string `json:"matching,omitempty" env:"MATCHING"` // "exact" or "legacy".
}

// DefaultConfig returns the default history configuration (disabled until
// Dir is set).
func DefaultConfig() Config {
	return Config{
		File:     DefaultFile,
		Matching: MatchExact.String(),
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Dir != "" {
		c.Dir = source.Dir
	}
	if source.File != "" {
		c.File = source.File
	}
	if source.Matching != "" {
		c.Matching = source.Matching
	}
}

// Path returns the full path of the history file, or "" when disabled.
func (c *Config) Path() string {
	if c.Dir == "" {
		return ""
	}
	file := c.File
	if file == "" {
		file = DefaultFile
	}
	return filepath.Join(c.Dir, file)
}

// NewStore creates a Store from configuration. Returns nil Store when Dir
// is empty, indicating history is disabled.
func NewStore(cfg *Config) (Store, error) {
	path := cfg.Path()
	if path == "" {
		return nil, nil
	}
	matching, err := ParseMatching(cfg.Matching)
	if err != nil {
		return nil, err
	}
	return NewFileStore(path, matching), nil
}
