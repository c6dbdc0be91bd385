package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"GazeteBot/internal/filter"
)

const (
	configPathEnv  = "GAZETEBOT_CONFIG"
	sendgridKeyEnv = "SENDGRID_API_KEY"
	fromEmailEnv   = "FROM_EMAIL"
	toEmailEnv     = "TO_EMAIL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Filters FiltersConfig `yaml:"filters"`
	Mail    MailConfig    `yaml:"mail"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FetchConfig tunes the retrieval tier chain.
type FetchConfig struct {
	TimeoutSeconds int `yaml:"timeoutSeconds"`
	FeedRetries    int `yaml:"feedRetries"`
	WebRetries     int `yaml:"webRetries"`
	RelayRetries   int `yaml:"relayRetries"`
}

// Timeout resolves the per-request timeout.
func (f FetchConfig) Timeout() time.Duration {
	if f.TimeoutSeconds <= 0 {
		return 45 * time.Second
	}
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// FiltersConfig toggles the exclusion rule families. Pointers distinguish an
// explicit false in the file from an absent key.
type FiltersConfig struct {
	Universities  *bool `yaml:"universities"`
	Announcements *bool `yaml:"announcements"`
	CentralBank   *bool `yaml:"centralBank"`
	Appointments  *bool `yaml:"appointments"`
}

// Options resolves the toggles against the documented defaults: every family
// on except the appointment filter.
func (f FiltersConfig) Options() filter.Options {
	opts := filter.DefaultOptions()
	if f.Universities != nil {
		opts.Universities = *f.Universities
	}
	if f.Announcements != nil {
		opts.Announcements = *f.Announcements
	}
	if f.CentralBank != nil {
		opts.CentralBank = *f.CentralBank
	}
	if f.Appointments != nil {
		opts.Appointments = *f.Appointments
	}
	return opts
}

// MailConfig wires the SendGrid credential and addresses.
type MailConfig struct {
	APIKey string `yaml:"apiKey"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides. An explicit path wins over the GAZETEBOT_CONFIG variable.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(sendgridKeyEnv); v != "" {
		c.Mail.APIKey = v
	}
	if v := os.Getenv(fromEmailEnv); v != "" {
		c.Mail.From = v
	}
	if v := os.Getenv(toEmailEnv); v != "" {
		c.Mail.To = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Fetch.TimeoutSeconds > 0 {
		base.Fetch.TimeoutSeconds = override.Fetch.TimeoutSeconds
	}
	if override.Fetch.FeedRetries > 0 {
		base.Fetch.FeedRetries = override.Fetch.FeedRetries
	}
	if override.Fetch.WebRetries > 0 {
		base.Fetch.WebRetries = override.Fetch.WebRetries
	}
	if override.Fetch.RelayRetries > 0 {
		base.Fetch.RelayRetries = override.Fetch.RelayRetries
	}

	if override.Filters.Universities != nil {
		base.Filters.Universities = override.Filters.Universities
	}
	if override.Filters.Announcements != nil {
		base.Filters.Announcements = override.Filters.Announcements
	}
	if override.Filters.CentralBank != nil {
		base.Filters.CentralBank = override.Filters.CentralBank
	}
	if override.Filters.Appointments != nil {
		base.Filters.Appointments = override.Filters.Appointments
	}

	if override.Mail.APIKey != "" {
		base.Mail.APIKey = override.Mail.APIKey
	}
	if override.Mail.From != "" {
		base.Mail.From = override.Mail.From
	}
	if override.Mail.To != "" {
		base.Mail.To = override.Mail.To
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Fetch: FetchConfig{
			TimeoutSeconds: 45,
			FeedRetries:    3,
			WebRetries:     2,
			RelayRetries:   2,
		},
		Mail: MailConfig{From: "resmigazete@bot.com"},
	}
}
