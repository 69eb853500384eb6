package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "TOYENGINE"

// Config keys
const (
	KeyLogLevel         = "log.level"
	KeyLogSeqURL        = "log.seq_url"
	KeyLogMutations     = "log.mutations"
	KeyShellPrompt      = "shell.prompt"
	KeyShellAutoReindex = "shell.auto_reindex"
)

type Config struct {
	Log struct {
		Level     string `mapstructure:"level"`
		SeqURL    string `mapstructure:"seq_url"`
		Mutations bool   `mapstructure:"mutations"`
	} `mapstructure:"log"`

	Shell struct {
		Prompt      string `mapstructure:"prompt"`
		AutoReindex bool   `mapstructure:"auto_reindex"`
	} `mapstructure:"shell"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogSeqURL, "")
	v.SetDefault(KeyLogMutations, false)
	v.SetDefault(KeyShellPrompt, "> ")
	v.SetDefault(KeyShellAutoReindex, false)
}

// Load reads a YAML config file when path is set, then applies
// TOYENGINE_* environment overrides (e.g. TOYENGINE_LOG_LEVEL).
// An empty path yields defaults plus environment; a path that cannot be
// read is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
