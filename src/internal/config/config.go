package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"citations/src/internal/crossref"
	"citations/src/internal/googlebooks"
	"citations/src/internal/httpx"
	"citations/src/internal/openlibrary"
)

// Config holds retrieval settings. Every field has a working default;
// a config file and CITE_* environment variables may override it.
type Config struct {
	// Mailto is the contact address sent to Crossref for polite-pool access.
	Mailto        string        `yaml:"mailto" mapstructure:"mailto"`
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxResults    int           `yaml:"max_results" mapstructure:"max_results"`
	RatePerSecond float64       `yaml:"rate_per_second" mapstructure:"rate_per_second"`
}

var maxResults = 5

// MaxResults reports the per-source result cap from the last Apply. Commands
// use it as the --limit default.
func MaxResults() int { return maxResults }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timeout:       10 * time.Second,
		MaxResults:    5,
		RatePerSecond: 5,
	}
}

// Load resolves configuration in priority order: defaults, then the config
// file ($HOME/.cite/config.yaml unless cfgFile overrides it), then CITE_*
// environment variables. A missing default config file is not an error; a
// missing explicit one is.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("mailto", def.Mailto)
	v.SetDefault("timeout", def.Timeout)
	v.SetDefault("max_results", def.MaxResults)
	v.SetDefault("rate_per_second", def.RatePerSecond)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.cite")
	}
	v.SetEnvPrefix("CITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil && cfgFile != "" {
		return Config{}, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply pushes retrieval settings into the three source clients.
func (c Config) Apply() {
	if c.MaxResults > 0 {
		maxResults = c.MaxResults
	}
	hc := httpx.NewClient(c.Timeout)
	crossref.SetHTTPClient(hc)
	googlebooks.SetHTTPClient(hc)
	openlibrary.SetHTTPClient(hc)
	crossref.SetMailto(c.Mailto)
	crossref.SetRateLimit(c.RatePerSecond)
	googlebooks.SetRateLimit(c.RatePerSecond)
	openlibrary.SetRateLimit(c.RatePerSecond)
}
