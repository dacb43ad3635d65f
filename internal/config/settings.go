package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/atelier/pkg/money"
	apperrors "github.com/alexisbeaulieu97/atelier/pkg/errors"
)

// EnvPrefix namespaces environment overrides, e.g. ATELIER_THEME=dark.
const EnvPrefix = "ATELIER"

// Settings are the user-tunable knobs of the store. Precedence is flags, then
// environment, then config file, then defaults.
type Settings struct {
	Theme    string `mapstructure:"theme" validate:"required,theme"`
	Catalog  string `mapstructure:"catalog"`
	Currency string `mapstructure:"currency" validate:"required,max=8"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFile  string `mapstructure:"log_file"`
}

// DefaultSettings returns the values used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Theme:    "light",
		Currency: money.DefaultSymbol,
		LogLevel: "info",
	}
}

// LoadDotEnv loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is fine.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperrors.NewParseError(path, 0, err)
	}
	return nil
}

// NewViper prepares a viper instance with defaults, environment binding and
// the config file. An explicit configFile must exist; otherwise .atelier.yaml
// is looked up in the working directory and the home directory.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("catalog", defaults.Catalog)
	v.SetDefault("currency", defaults.Currency)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".atelier")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return v, nil
		}
		path := configFile
		if path == "" {
			path = v.ConfigFileUsed()
		}
		return nil, apperrors.NewParseError(path, 0, err)
	}

	return v, nil
}

// LoadSettings decodes and validates the settings held by v.
func LoadSettings(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, apperrors.NewValidationError("settings", err.Error(), err)
	}

	s.Theme = strings.ToLower(strings.TrimSpace(s.Theme))
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))

	if err := validatorInstance().Struct(&s); err != nil {
		return Settings{}, convertValidationError(err)
	}
	return s, nil
}
