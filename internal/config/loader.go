package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all engine settings.
const envPrefix = "CONSTRDOC"

// configKeys lists every settings key so that viper can resolve environment
// overrides during Unmarshal; AutomaticEnv alone cannot enumerate env vars
// for keys it has never seen.
var configKeys = []string{
	"classifier.rules_path",
	"classifier.inherit_decay",
	"classifier.watch_rules",
	"dedup.threshold",
	"dedup.tokenizer",
	"log.level",
	"log.format",
	"log.output",
	"log.enable_caller",
	"metrics.enabled",
	"metrics.namespace",
}

// newViper builds a pre-configured Viper instance with the engine's standard
// settings: YAML file type, CONSTRDOC_ env prefix, automatic env binding, and
// a key replacer that maps "." → "_" so that nested keys like "dedup.threshold"
// resolve to "CONSTRDOC_DEDUP_THRESHOLD".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			panic(fmt.Sprintf("config: failed to bind env for %q: %v", key, err))
		}
	}
	return v
}

// Load reads the YAML file at configPath, merges any CONSTRDOC_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from CONSTRDOC_* environment variables,
// with no config file required.  This is the preferred loading strategy for
// containerised deployments.
//
// Environment variable naming convention:
//
//	CONSTRDOC_<SECTION>_<FIELD>   e.g.  CONSTRDOC_DEDUP_THRESHOLD
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  It is intended for
// hot-reloading non-critical settings such as the log level and the dedup
// threshold; callers apply only the safe subset of changes at runtime.
//
// Watch is non-blocking; it starts a background goroutine managed by viper.
// If the changed file fails to parse or validate, onChange is not called.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read — errors are ignored here; callers should call Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			// A broken edit must not propagate a half-valid config.
			return
		}
		onChange(cfg)
	})
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// It is intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

//Personal.AI order the ending
