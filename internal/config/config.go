// Package config loads examprep settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Content   ContentConfig   `mapstructure:"content"`
	Identity  IdentityConfig  `mapstructure:"identity"`
	Learning  LearningConfig  `mapstructure:"learning"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Speech    SpeechConfig    `mapstructure:"speech"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
	Quiz      QuizConfig      `mapstructure:"quiz"`
}

// ContentConfig points at a directory of content YAML files.
// An empty directory selects the embedded sample content.
type ContentConfig struct {
	Directory string `mapstructure:"directory"`
}

type IdentityConfig struct {
	Directory  string `mapstructure:"directory" validate:"required"`
	AdminEmail string `mapstructure:"admin_email" validate:"required,email"`
}

const (
	LearningStoreYAML     = "yaml"
	LearningStoreDatabase = "database"
)

type LearningConfig struct {
	Store     string `mapstructure:"store" validate:"oneof=yaml database"`
	Directory string `mapstructure:"directory" validate:"required_if=Store yaml"`
	PassMark  int    `mapstructure:"pass_mark" validate:"gte=0,lte=100"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Path            string            `mapstructure:"path"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type SpeechConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	BaseURL        string   `mapstructure:"base_url" validate:"omitempty,url"`
	Language       string   `mapstructure:"language"`
	CacheDirectory string   `mapstructure:"cache_directory"`
	Player         []string `mapstructure:"player"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds" validate:"gte=0"`
}

type TemplatesConfig struct {
	ResultTemplate string `mapstructure:"result_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	ReportDirectory string `mapstructure:"report_directory"`
	PDF             bool   `mapstructure:"pdf"`
}

type QuizConfig struct {
	VocabularySize int `mapstructure:"vocabulary_size" validate:"gt=0"`
	Distractors    int `mapstructure:"distractors" validate:"gt=0"`
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
		v.AddConfigPath("$HOME/.config/examprep")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	// Empty means the embedded sample content
	v.SetDefault("content.directory", "")
	v.SetDefault("identity.directory", filepath.Join("data", "identity"))
	v.SetDefault("identity.admin_email", "admin@ssc.com")
	v.SetDefault("learning.store", "yaml")
	v.SetDefault("learning.directory", filepath.Join("data", "learning"))
	v.SetDefault("learning.pass_mark", 80)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", filepath.Join("data", "examprep.db"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "examprep")
	v.SetDefault("database.username", "user")
	v.SetDefault("speech.enabled", false)
	v.SetDefault("speech.base_url", "https://translate.google.com/translate_tts")
	v.SetDefault("speech.language", "en")
	v.SetDefault("speech.cache_directory", filepath.Join("data", "speech"))
	v.SetDefault("speech.player", []string{"mpg123", "-q"})
	v.SetDefault("speech.timeout_seconds", 10)
	v.SetDefault("templates.result_template", "")
	v.SetDefault("outputs.report_directory", filepath.Join("outputs", "reports"))
	v.SetDefault("outputs.pdf", false)
	v.SetDefault("quiz.vocabulary_size", 5)
	v.SetDefault("quiz.distractors", 3)

	if err := v.BindEnv("database.password", "EXAMPREP_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind EXAMPREP_DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("identity.admin_email", "EXAMPREP_ADMIN_EMAIL"); err != nil {
		return nil, fmt.Errorf("failed to bind EXAMPREP_ADMIN_EMAIL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load reads configuration from configFile, or from config.yml in the working
// directory or $HOME/.config/examprep when configFile is empty.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}
