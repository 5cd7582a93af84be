package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"affixsplit/internal/config"
	"affixsplit/internal/logging"
	"affixsplit/internal/progress"
)

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.flags != nil {
			path = strings.TrimSpace(c.flags.config)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.flags != nil {
			if v := strings.TrimSpace(c.flags.logLevel); v != "" {
				cfg.Logging.Level = v
			}
			if v := strings.TrimSpace(c.flags.logFormat); v != "" {
				cfg.Logging.Format = v
			}
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(cfg *config.Config) (*slog.Logger, logging.CloseFunc, error) {
	return logging.NewFromConfig(cfg)
}

func (c *commandContext) progressFactory(cfg *config.Config) progress.Factory {
	return progress.NewFactory(os.Stderr, progress.Mode(cfg.Progress.Mode))
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
