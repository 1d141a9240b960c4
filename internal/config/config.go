// Package config loads release settings from an optional .cueme-release.yaml
// at the repository root. Every key has a default matching the CueMe project
// layout, so running without a config file works out of the box.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const configName = ".cueme-release"

// Config holds the release workflow settings.
type Config struct {
	// Remote is the git remote the branch and tag are pushed to.
	Remote string `mapstructure:"remote" yaml:"remote"`
	// Branch is the branch releases are expected to start from.
	Branch string `mapstructure:"branch" yaml:"branch"`
	// BuildCommand is the project build invocation, split on whitespace.
	BuildCommand string `mapstructure:"build_command" yaml:"build_command"`
	// ArtifactDirs are the directories the build must produce.
	ArtifactDirs []string `mapstructure:"artifact_dirs" yaml:"artifact_dirs"`
	// Manifest is the package manifest carrying the version field.
	Manifest string `mapstructure:"manifest" yaml:"manifest"`
	// Lockfile is the companion lockfile; ignored when absent on disk.
	Lockfile string `mapstructure:"lockfile" yaml:"lockfile"`
	// ActionsURL is where the downstream CI build can be monitored.
	ActionsURL string `mapstructure:"actions_url" yaml:"actions_url"`
	// ReleasesURL is where the published artifact will appear.
	ReleasesURL string `mapstructure:"releases_url" yaml:"releases_url"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("remote", "origin")
	v.SetDefault("branch", "main")
	v.SetDefault("build_command", "npm run build")
	v.SetDefault("artifact_dirs", []string{"dist", "dist-electron"})
	v.SetDefault("manifest", "package.json")
	v.SetDefault("lockfile", "package-lock.json")
	v.SetDefault("actions_url", "https://github.com/cueme/cueme/actions")
	v.SetDefault("releases_url", "https://github.com/cueme/cueme/releases")
}

// Load reads the config. With an empty path it looks for .cueme-release.yaml
// in dir and silently falls back to defaults when no file exists; with an
// explicit path a missing or unreadable file is an error.
func Load(dir, path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.ArtifactDirs) == 0 {
		return nil, fmt.Errorf("config: artifact_dirs must name at least one directory")
	}
	return &cfg, nil
}

// Dump renders the effective config as YAML, for verbose output.
func (c *Config) Dump() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("rendering config: %w", err)
	}
	return string(data), nil
}
