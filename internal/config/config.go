// Package config loads the command line host settings from a TOML file,
// an optional .env file and the process environment.
package config

import (
	"bytes"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/vst3go/plugintemplate/pkg/framework/bus"
	"github.com/vst3go/plugintemplate/pkg/framework/debug"
)

// Default file names, looked up in the working directory.
const (
	DefaultFile    = "plugintemplate.toml"
	DefaultEnvFile = ".env"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PLUGINTEMPLATE_"

// Config is the effective configuration.
type Config struct {
	Host   HostConfig   `toml:"host"`
	Log    LogConfig    `toml:"log"`
	Editor EditorConfig `toml:"editor"`
}

// HostConfig drives the offline host.
type HostConfig struct {
	SampleRate float64 `toml:"sample_rate"`
	BlockSize  int     `toml:"block_size"`
	BitDepth   int     `toml:"bit_depth"`
	Layout     string  `toml:"layout"`
}

// LogConfig configures the framework logger. An empty File logs to stderr.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// EditorConfig maps editor pixels to terminal cells.
type EditorConfig struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Host: HostConfig{
			SampleRate: 48000,
			BlockSize:  512,
			BitDepth:   16,
			Layout:     "stereo",
		},
		Log: LogConfig{
			Level: "info",
		},
		Editor: EditorConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// Load builds the configuration from the defaults, the TOML file at path,
// envFile and the process environment, in increasing precedence. An empty
// path or envFile selects the default name, which may be absent; explicitly
// named files must exist.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if err := cfg.readFile(path); err != nil {
		return nil, err
	}

	dotenv, err := readEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	optional := path == ""
	if optional {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read config %v", path)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return errors.Wrapf(err, "parse config %v", path)
	}
	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	optional := path == ""
	if optional {
		path = DefaultEnvFile
	}

	env, err := godotenv.Read(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "load %v", path)
	}
	return env, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parse %v%v", EnvPrefix, name)
		}
		*dst = n
		return nil
	}

	if v, ok := lookup(EnvPrefix + "SAMPLE_RATE"); ok {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(err, "parse %vSAMPLE_RATE", EnvPrefix)
		}
		c.Host.SampleRate = rate
	}
	for name, dst := range map[string]*int{
		"BLOCK_SIZE":  &c.Host.BlockSize,
		"BIT_DEPTH":   &c.Host.BitDepth,
		"CELL_WIDTH":  &c.Editor.CellWidth,
		"CELL_HEIGHT": &c.Editor.CellHeight,
	} {
		if err := num(name, dst); err != nil {
			return err
		}
	}
	str("LAYOUT", &c.Host.Layout)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FILE", &c.Log.File)
	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Host.SampleRate <= 0 {
		return errors.Errorf("sample_rate must be positive, got %v", c.Host.SampleRate)
	}
	if c.Host.BlockSize <= 0 {
		return errors.Errorf("block_size must be positive, got %v", c.Host.BlockSize)
	}
	switch c.Host.BitDepth {
	case 16, 24, 32:
	default:
		return errors.Errorf("bit_depth must be 16, 24 or 32, got %v", c.Host.BitDepth)
	}
	if _, err := c.Layout(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Editor.CellWidth < 0 || c.Editor.CellHeight < 0 {
		return errors.Errorf("editor cell size must not be negative, got %vx%v", c.Editor.CellWidth, c.Editor.CellHeight)
	}
	return nil
}

// Layout returns the host layout: the same arrangement on input and output.
func (c *Config) Layout() (bus.Layout, error) {
	switch c.Host.Layout {
	case "mono", "stereo":
	default:
		return bus.Layout{}, errors.Errorf("layout must be mono or stereo, got %q", c.Host.Layout)
	}
	arr, err := bus.ParseArrangement(c.Host.Layout)
	if err != nil {
		return bus.Layout{}, errors.Wrapf(err, "layout")
	}
	return bus.NewLayout(arr, arr), nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (debug.LogLevel, error) {
	level, err := debug.ParseLevel(c.Log.Level)
	if err != nil {
		return level, errors.Wrapf(err, "log level")
	}
	return level, nil
}

// Encode returns the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrapf(err, "encode config")
	}
	return data, nil
}
