package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const DefaultBaseURL = "http://localhost:3001"

type Config struct {
	BaseURL    string `mapstructure:"base_url"`
	StagingDir string `mapstructure:"staging_dir"`
	LogFile    string `mapstructure:"log_file"`
	MockPort   string `mapstructure:"mock_port"`
}

// Load reads configuration from an optional YAML file and the environment.
// An empty configPath falls back to $HOME/.docchat.yaml if it exists.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("staging_dir", defaultStagingDir())
	v.SetDefault("log_file", "docchat.log")
	v.SetDefault("mock_port", "3001")

	v.SetEnvPrefix("DOCCHAT")
	v.AutomaticEnv()
	v.BindEnv("base_url")
	v.BindEnv("staging_dir")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
			v.SetConfigType("yaml")
			v.SetConfigName(".docchat")
			// Missing file is fine, the defaults carry.
			_ = v.ReadInConfig()
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func defaultStagingDir() string {
	return filepath.Join(os.TempDir(), "docchat")
}
