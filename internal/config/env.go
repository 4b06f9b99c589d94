// Package config provides environment-based application configuration.
// Variables carry the PROTCALC_ prefix; an optional .env file is loaded
// first, with real environment variables taking precedence.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every variable (PROTCALC_SEARCH_URL and so on).
const envPrefix = "PROTCALC"

// EnvConfig holds all environment-settable knobs.
type EnvConfig struct {
	// SearchURL is the UniProtKB search endpoint used for free-text
	// identifier resolution.
	SearchURL string `envconfig:"SEARCH_URL" default:"https://rest.uniprot.org/uniprotkb/search"`

	// EntryURL is the UniProtKB base for flat-file records ({acc}.txt).
	EntryURL string `envconfig:"ENTRY_URL" default:"https://rest.uniprot.org/uniprotkb"`

	// FastaURL is the base for the FASTA-by-accession fallback
	// ({acc}.fasta).
	FastaURL string `envconfig:"FASTA_URL" default:"https://www.uniprot.org/uniprot"`

	// TimeoutSeconds bounds every outbound HTTP call. A hung remote
	// otherwise blocks the whole run.
	TimeoutSeconds float64 `envconfig:"TIMEOUT_SECONDS" default:"30"`

	// Strict turns the fail-open degradations (unusable truncation
	// range, unknown tag) into fatal errors.
	Strict bool `envconfig:"STRICT" default:"false"`

	// LogLevel is the log verbosity (DEBUG, INFO, WARN, ERROR).
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (text or json).
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Timeout returns the HTTP timeout as a duration.
func (c EnvConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds * float64(time.Second))
}

// FromEnv loads configuration from the process environment.
func FromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// Load reads an optional .env file and then the environment. Existing
// environment variables win over file values.
func Load(envPath string) (EnvConfig, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return EnvConfig{}, err
	}
	return FromEnv()
}
