package config

import "github.com/kelseyhightower/envconfig"

// envPrefix is the prefix for all environment variables.
const envPrefix = "TMKIT"

// EnvConfig holds all environment-based configuration. Field names map to
// environment variables with the TMKIT_ prefix, e.g. TMKIT_MIN_SIMILARITY.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: TMKIT_HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: TMKIT_PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: TMKIT_DATA_DIR
	// Default: ~/.tmkit
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: TMKIT_DB_URL
	// Default: sqlite:///{data_dir}/tm.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: TMKIT_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: TMKIT_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// MaxCandidates caps the number of suggestions a lookup returns.
	// Env: TMKIT_MAX_CANDIDATES (default: 3)
	MaxCandidates int `envconfig:"MAX_CANDIDATES" default:"3"`

	// MinSimilarity is the 0-100 quality threshold for fuzzy matches.
	// Env: TMKIT_MIN_SIMILARITY (default: 75)
	MinSimilarity int `envconfig:"MIN_SIMILARITY" default:"75"`

	// MaxLength is the hard cap on string length considered for scoring.
	// Env: TMKIT_MAX_LENGTH (default: 1000)
	MaxLength int `envconfig:"MAX_LENGTH" default:"1000"`
}

// LoadEnv reads EnvConfig from the process environment.
func LoadEnv() (EnvConfig, error) {
	var env EnvConfig
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return EnvConfig{}, err
	}
	return env, nil
}
