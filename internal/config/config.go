package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Editor   EditorConfig   `mapstructure:"editor"`
	Review   ReviewConfig   `mapstructure:"review"`
}

// DatabaseConfig locates the SQLite file.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// EditorConfig controls the external editor used for approach and code.
type EditorConfig struct {
	// Command overrides $EDITOR when set.
	Command string `mapstructure:"command"`
	// CodeLanguage picks the temp-file extension for code editing.
	CodeLanguage string `mapstructure:"code_language"`
}

// ReviewConfig tunes presentation-level review settings.
type ReviewConfig struct {
	ActivityWindowDays int `mapstructure:"activity_window_days" validate:"min=1"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dsarecall")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	defaultDBPath, err := defaultDatabasePath()
	if err != nil {
		return nil, err
	}
	v.SetDefault("database.path", defaultDBPath)
	v.SetDefault("editor.code_language", "python")
	v.SetDefault("review.activity_window_days", 30)

	if err := v.BindEnv("database.path", "DSARECALL_DB"); err != nil {
		return nil, fmt.Errorf("failed to bind DSARECALL_DB environment variable: %w", err)
	}
	if err := v.BindEnv("editor.command", "DSARECALL_EDITOR"); err != nil {
		return nil, fmt.Errorf("failed to bind DSARECALL_EDITOR environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	return &cfg, nil
}

// defaultDatabasePath puts the database under the user config directory,
// e.g. ~/.config/dsarecall/dsarecall.db on Linux.
func defaultDatabasePath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config directory: %w", err)
	}
	return filepath.Join(base, "dsarecall", "dsarecall.db"), nil
}
