package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vancomm/sapper/internal/mines"
)

const EnvPrefix = "SAPPER"

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`    /* megabytes */
	MaxBackups int    `mapstructure:"max_backups"` /* rotated files kept */
	MaxAge     int    `mapstructure:"max_age"`     /* days */
}

type Config struct {
	Mode     string    `mapstructure:"mode"`
	UI       string    `mapstructure:"ui"`
	Level    string    `mapstructure:"level"`
	Width    int       `mapstructure:"width"`
	Height   int       `mapstructure:"height"`
	Bombs    int       `mapstructure:"bombs"`
	Seed     string    `mapstructure:"seed"`
	RandSeed uint64    `mapstructure:"rand_seed"`
	Log      LogConfig `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "production")
	v.SetDefault("ui", "console")
	v.SetDefault("level", "ask")
	v.SetDefault("width", 0)
	v.SetDefault("height", 0)
	v.SetDefault("bombs", 0)
	v.SetDefault("seed", "")
	v.SetDefault("rand_seed", 0)
	v.SetDefault("log.level", "warning")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file path")
	fs.String("mode", "", "development or production")
	fs.String("ui", "", "console or tui")
	fs.StringP("level", "l", "", "easy, medium, hard, custom or ask")
	fs.Int("width", 0, "board width for the custom level")
	fs.Int("height", 0, "board height for the custom level")
	fs.Int("bombs", 0, "bomb count for the custom level")
	fs.String("seed", "", `game parameters as "width:height:bombs", overrides level`)
	fs.Uint64("rand-seed", 0, "seed for bomb placement, 0 picks a random one")
	fs.String("log-level", "", "log level (trace, debug, info, warning, error)")
	fs.String("log-file", "", "write logs to this file instead of the terminal")
	return fs
}

var flagKeys = map[string]string{
	"mode":      "mode",
	"ui":        "ui",
	"level":     "level",
	"width":     "width",
	"height":    "height",
	"bombs":     "bombs",
	"seed":      "seed",
	"rand-seed": "rand_seed",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// Load reads the configuration from command line args, SAPPER_* environment
// variables and an optional config file, in that order of priority.
func Load(name string, args []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	fs := newFlagSet(name)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c Config) Validate() error {
	switch c.Mode {
	case "development", "production":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	switch c.UI {
	case "console", "tui":
	default:
		return fmt.Errorf("unknown ui %q", c.UI)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Params resolves the game parameters. It returns nil when the player should
// be asked for them.
func (c Config) Params() (*mines.GameParams, error) {
	if c.Seed != "" {
		p, err := mines.ParseSeed(c.Seed)
		if err != nil {
			return nil, err
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return p, nil
	}

	var p mines.GameParams
	switch level := strings.ToLower(c.Level); level {
	case "ask":
		return nil, nil
	case "custom":
		p = mines.GameParams{Width: c.Width, Height: c.Height, BombCount: c.Bombs}
	default:
		var ok bool
		if p, ok = mines.Level(level); !ok {
			return nil, errors.New("unknown level " + c.Level)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":            c.Mode,
		"ui":              c.UI,
		"level":           c.Level,
		"width":           c.Width,
		"height":          c.Height,
		"bombs":           c.Bombs,
		"seed":            c.Seed,
		"rand_seed":       c.RandSeed,
		"log_level":       c.Log.Level,
		"log_file":        c.Log.File,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge,
	}
}
