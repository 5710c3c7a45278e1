package esolang

import (
	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// Config is the file form of the interpreter options.
//
//	codel_size = 2
//	debug = false
//	max_steps = 10000
//	log_level = "info"
type Config struct {
	CodelSize int
	Debug     bool
	MaxSteps  int
	LogLevel  string
}

func DefaultConfig() Config {
	return Config{
		CodelSize: DefaultCodelSize,
		MaxSteps:  DefaultStepLimit,
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Values are coerced, so
// codel_size = "2" and codel_size = 2 mean the same thing.
func LoadConfig(path string) (Config, error) {
	raw := map[string]interface{}{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return Config{}, wrapError(ErrConfig, "Decode %s, %v", path, err)
	}
	return ParseConfig(raw)
}

func ParseConfig(raw map[string]interface{}) (Config, error) {
	c := DefaultConfig()

	var err error
	for k, v := range raw {
		switch k {
		case "codel_size":
			c.CodelSize, err = cast.ToIntE(v)
		case "debug":
			c.Debug, err = cast.ToBoolE(v)
		case "max_steps":
			c.MaxSteps, err = cast.ToIntE(v)
		case "log_level":
			c.LogLevel, err = cast.ToStringE(v)
		default:
			return Config{}, wrapError(ErrConfig, "Unknown key %q", k)
		}
		if err != nil {
			return Config{}, wrapError(ErrConfig, "Key %q, %v", k, err)
		}
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.CodelSize < 1 {
		return wrapError(ErrCodelSize, "Got %d", c.CodelSize)
	}
	if c.MaxSteps < 1 {
		return wrapError(ErrStepLimit, "Got %d", c.MaxSteps)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return wrapError(ErrConfig, "Log level, %v", err)
		}
	}
	return nil
}

func (c Config) Options() []Option {
	return []Option{
		WithCodelSize(c.CodelSize),
		WithDebug(c.Debug),
		WithStepLimit(c.MaxSteps),
	}
}

// ApplyLogLevel sets the package logger level when one is configured.
func (c Config) ApplyLogLevel() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err == nil {
		stdLogger.SetLevel(level)
	}
}
