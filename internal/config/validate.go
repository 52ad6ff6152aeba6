package config

import (
	"errors"
	"fmt"
)

var validLevels = map[string]struct{}{
	"none":    {},
	"debug":   {},
	"verbose": {},
	"info":    {},
	"warning": {},
	"error":   {},
	"force":   {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLevels(); err != nil {
		return err
	}
	if err := c.validateColor(); err != nil {
		return err
	}
	if c.RetentionDays < 0 {
		return errors.New("retention_days must be zero or positive")
	}
	return nil
}

func (c *Config) validateLevels() error {
	if _, ok := validLevels[c.ConsoleLevel]; !ok {
		return fmt.Errorf("console_level: unknown level %q", c.ConsoleLevel)
	}
	if _, ok := validLevels[c.FileLevel]; !ok {
		return fmt.Errorf("file_level: unknown level %q", c.FileLevel)
	}
	for _, name := range c.DisabledLevels {
		if _, ok := validLevels[name]; !ok {
			return fmt.Errorf("disabled_levels: unknown level %q", name)
		}
		if name == "force" {
			return errors.New("disabled_levels: force cannot be disabled")
		}
	}
	return nil
}

func (c *Config) validateColor() error {
	switch c.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("color: must be auto, always, or never (got %q)", c.Color)
	}
}
