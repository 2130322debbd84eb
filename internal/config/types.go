package config

// Config is the root configuration for the assistant.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Session  SessionConfig  `toml:"session"`
	Matcher  MatcherConfig  `toml:"matcher"`
	AI       AIConfig       `toml:"ai"`
	Logging  LoggingConfig  `toml:"logging"`
}

// DatabaseConfig locates the student database.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// SessionConfig controls conversation-context persistence.
// An empty Path keeps contexts in memory.
type SessionConfig struct {
	Path string `toml:"path"`
}

// MatcherConfig holds the intent-matching tunables.
type MatcherConfig struct {
	// PhraseWeight and KeywordWeight blend phrase similarity with
	// keyword overlap; they should sum to 1.
	PhraseWeight  float64 `toml:"phrase_weight"`
	KeywordWeight float64 `toml:"keyword_weight"`

	// ConfidenceThreshold is the minimum blended score to accept a match.
	ConfidenceThreshold float64 `toml:"confidence_threshold"`

	// CandidateCap bounds how many search results are held for selection.
	CandidateCap int `toml:"candidate_cap"`

	// DisplayCap bounds how many records a list answer shows.
	DisplayCap int `toml:"display_cap"`
}

// AIConfig configures the generative fallback collaborator.
type AIConfig struct {
	Enabled        bool   `toml:"enabled"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}
