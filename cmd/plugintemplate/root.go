package main

import (
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/spf13/cobra"

	"github.com/vst3go/plugintemplate/internal/config"
	"github.com/vst3go/plugintemplate/pkg/framework/debug"
	"github.com/vst3go/plugintemplate/pkg/framework/plugin"
	"github.com/vst3go/plugintemplate/pkg/host"
	"github.com/vst3go/plugintemplate/pkg/scaffold"
)

var (
	configFile string
	envFile    string
	logLevel   string

	// Set by the root command before any subcommand runs
	cfg    *config.Config
	logger *debug.Logger

	// newProcessor creates the hosted plugin
	newProcessor plugin.Factory = scaffold.Factory
)

var rootCmd = &cobra.Command{
	Use:   "plugintemplate",
	Short: "Offline host for the template plugin",
	Long: `plugintemplate loads the template plugin into an offline host.

Settings come from plugintemplate.toml, a .env file and PLUGINTEMPLATE_*
environment variables, in increasing precedence.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Close()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "TOML config file (default "+config.DefaultFile+" if present)")
	flags.StringVar(&envFile, "env-file", "", "dotenv file (default "+config.DefaultEnvFile+" if present)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error, off")
}

func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configFile, envFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	level, err := c.LogLevel()
	if err != nil {
		return err
	}

	l := debug.New(cmd.ErrOrStderr(), "", debug.DefaultFlags)
	if c.Log.File != "" {
		if l, err = debug.NewFileLogger(c.Log.File, "", debug.DefaultFlags); err != nil {
			return errors.Wrapf(err, "open log")
		}
	}
	l.SetLevel(level)

	cfg, logger = c, l
	logger.Debug("config loaded: rate=%v block=%v layout=%v", cfg.Host.SampleRate, cfg.Host.BlockSize, cfg.Host.Layout)
	return nil
}

// newHost creates a host around a fresh processor using the configured
// block size and the given sample rate, or the configured one when zero.
func newHost(sampleRate float64) (*host.Host, error) {
	if sampleRate <= 0 {
		sampleRate = cfg.Host.SampleRate
	}
	return host.New(newProcessor(),
		host.WithSampleRate(sampleRate),
		host.WithBlockSize(cfg.Host.BlockSize),
		host.WithLogger(logger),
	)
}

// preparedHost is newHost negotiated to the configured layout and prepared.
func preparedHost() (*host.Host, error) {
	h, err := newHost(0)
	if err != nil {
		return nil, err
	}
	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	if _, err := h.Negotiate(layout); err != nil {
		return nil, errors.Wrapf(err, "negotiate %v", layout)
	}
	if err := h.Prepare(); err != nil {
		return nil, err
	}
	return h, nil
}
