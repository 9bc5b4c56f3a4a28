package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"hostdash/internal/errors"
)

// Find returns the config file to load: the explicit path if given, then
// ./.hostdash.yaml, then ~/.config/hostdash/config.yaml. It returns "" when
// none exists.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+explicit,
				"Check the path passed to --config")
		}
		return explicit, nil
	}

	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}
	return "", nil
}

// Load reads the config at path (or only defaults and environment when
// path is ""), then validates it.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check that "+path+" is valid YAML")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the value types in "+path)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault finds and loads the config, falling back to defaults.
func LoadOrDefault(explicit string) (Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("provider", d.Provider)
	v.SetDefault("library_path", d.LibraryPath)
	v.SetDefault("disk_path", d.DiskPath)
	v.SetDefault("process_limit", d.ProcessLimit)
	v.SetDefault("gpu", d.GPU)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("glow", d.Glow)
}
