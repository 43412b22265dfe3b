// Package config loads ask.yml: default formatting rules, retry limit and
// log level for the ask CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/ask/format"
	"github.com/simonhull/firebird-suite/ask/logger"
)

// FileName is the config file looked up in the working directory.
const FileName = "ask.yml"

// EnvPrefix prefixes every environment override, e.g. ASK_MAX_TRIES.
const EnvPrefix = "ASK"

// ErrCodeConfig tags every configuration error.
const ErrCodeConfig = "ASK_CONFIG"

// MetaKeyKey is the metadata key naming the offending setting.
const MetaKeyKey = "key"

// Config represents ask.yml
type Config struct {
	Format   FormatConfig `yaml:"format"`
	MaxTries int          `yaml:"max_tries"`
	LogLevel string       `yaml:"log_level"`
}

// FormatConfig mirrors format.Rules
type FormatConfig struct {
	MsgPrefix    string `yaml:"msg_prefix"`
	InputPrefix  string `yaml:"input_prefix"`
	BreakLine    bool   `yaml:"break_line"`
	RepeatPrompt bool   `yaml:"repeat_prompt"`
	ListOpen     string `yaml:"list_open"`
	ListClose    string `yaml:"list_close"`
	ListMsgPos   string `yaml:"list_msg_pos"`
	InvalidMsg   string `yaml:"invalid_msg"`
}

// DefaultConfig returns a config with the built-in defaults
func DefaultConfig() *Config {
	b := format.Builtin
	return &Config{
		Format: FormatConfig{
			MsgPrefix:    b.MsgPrefix,
			InputPrefix:  b.InputPrefix,
			BreakLine:    b.BreakLine,
			RepeatPrompt: b.RepeatPrompt,
			ListOpen:     b.ListOpen,
			ListClose:    b.ListClose,
			ListMsgPos:   b.ListMsgPos.String(),
			InvalidMsg:   b.InvalidMsg,
		},
		MaxTries: 0,
		LogLevel: "warn",
	}
}

// LoadEnv loads the given dotenv files into the process environment.
// Missing files are skipped; variables already set win.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return cuserr.WrapStdError(err, ErrCodeConfig, "failed to load env file").
				WithMetadata("file", f)
		}
	}
	return nil
}

// Load reads the config at path. With an empty path, ask.yml is looked up
// in the working directory and the defaults are used when it is absent.
// ASK_* environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".yml"))
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("format.msg_prefix", def.Format.MsgPrefix)
	v.SetDefault("format.input_prefix", def.Format.InputPrefix)
	v.SetDefault("format.break_line", def.Format.BreakLine)
	v.SetDefault("format.repeat_prompt", def.Format.RepeatPrompt)
	v.SetDefault("format.list_open", def.Format.ListOpen)
	v.SetDefault("format.list_close", def.Format.ListClose)
	v.SetDefault("format.list_msg_pos", def.Format.ListMsgPos)
	v.SetDefault("format.invalid_msg", def.Format.InvalidMsg)
	v.SetDefault("max_tries", def.MaxTries)
	v.SetDefault("log_level", def.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, cuserr.WrapStdError(err, ErrCodeConfig, "failed to read config").
				WithMetadata("file", path)
		}
	}

	cfg := &Config{
		Format: FormatConfig{
			MsgPrefix:    v.GetString("format.msg_prefix"),
			InputPrefix:  v.GetString("format.input_prefix"),
			BreakLine:    v.GetBool("format.break_line"),
			RepeatPrompt: v.GetBool("format.repeat_prompt"),
			ListOpen:     v.GetString("format.list_open"),
			ListClose:    v.GetString("format.list_close"),
			ListMsgPos:   v.GetString("format.list_msg_pos"),
			InvalidMsg:   v.GetString("format.invalid_msg"),
		},
		MaxTries: v.GetInt("max_tries"),
		LogLevel: v.GetString("log_level"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be expressed by the YAML types.
func (c *Config) Validate() error {
	if _, ok := format.ParsePosition(strings.ToLower(c.Format.ListMsgPos)); !ok {
		return cuserr.NewValidationError(ErrCodeConfig, "list_msg_pos must be top or bottom").
			WithMetadata(MetaKeyKey, "format.list_msg_pos")
	}
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return cuserr.NewValidationError(ErrCodeConfig, "unknown log level").
			WithMetadata(MetaKeyKey, "log_level")
	}
	if c.MaxTries < 0 {
		return cuserr.NewValidationError(ErrCodeConfig, "max_tries cannot be negative").
			WithMetadata(MetaKeyKey, "max_tries").
			WithMetadata("value", strconv.Itoa(c.MaxTries))
	}
	return nil
}

// Rules converts the format section to format rules.
func (c *Config) Rules() format.Rules {
	pos, _ := format.ParsePosition(strings.ToLower(c.Format.ListMsgPos))
	return format.New().
		MsgPrefix(c.Format.MsgPrefix).
		InputPrefix(c.Format.InputPrefix).
		BreakLine(c.Format.BreakLine).
		RepeatPrompt(c.Format.RepeatPrompt).
		ListSurrounds(c.Format.ListOpen, c.Format.ListClose).
		ListMsgPos(pos).
		InvalidMsg(c.Format.InvalidMsg)
}

// Level returns the configured log level.
func (c *Config) Level() logger.Level {
	l, _ := logger.ParseLevel(c.LogLevel)
	return l
}

// Apply installs the format section as the process-wide default rules.
func (c *Config) Apply() {
	format.SetDefault(c.Rules())
}

// Save writes cfg to path as YAML
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
