package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDrive(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDrive() error {
	if c.Drive.Index < 0 {
		return fmt.Errorf("drive.index must be >= 0 (got %d)", c.Drive.Index)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateWatch() error {
	if c.Watch.PollInterval <= 0 {
		return errors.New("watch.poll_interval must be positive")
	}
	if c.Watch.UseNetlink && c.Drive.Device == "" {
		return errors.New("drive.device must be set when watch.use_netlink is true")
	}
	return nil
}
