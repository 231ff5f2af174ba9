package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"cdplay/internal/config"
	"cdplay/internal/drivelock"
	"cdplay/internal/logging"
	"cdplay/internal/sdlcd"
)

// errOperationFailed wraps a control call that SDL reported as failed.
var errOperationFailed = errors.New("drive operation failed")

type commandContext struct {
	library    *sdlcd.Library
	configFlag *string
	driveFlag  *int
	jsonFlag   *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(lib *sdlcd.Library, configFlag *string, driveFlag *int, jsonFlag *bool) *commandContext {
	if lib == nil {
		lib = sdlcd.Default()
	}
	return &commandContext{
		library:    lib,
		configFlag: configFlag,
		driveFlag:  driveFlag,
		jsonFlag:   jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// log returns the command logger. Logger setup failures fall back to a
// no-op logger; they never stop a drive command.
func (c *commandContext) log() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

// driveIndex resolves --drive, falling back to drive.index from config.
func (c *commandContext) driveIndex() (int, error) {
	if c.driveFlag != nil && *c.driveFlag >= 0 {
		return *c.driveFlag, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return 0, err
	}
	return cfg.Drive.Index, nil
}

// withLibrary initializes the CD-ROM subsystem for the duration of fn.
func (c *commandContext) withLibrary(fn func(*sdlcd.Library) error) error {
	if err := c.library.Init(); err != nil {
		return fmt.Errorf("initialize cd-rom subsystem: %w", err)
	}
	defer c.library.Quit()
	return fn(c.library)
}

// withDrive opens the selected drive, runs fn and closes the handle. When
// exclusive is set the per-drive lock is held for the duration.
func (c *commandContext) withDrive(exclusive bool, fn func(*sdlcd.Library, *sdlcd.CD) error) error {
	index, err := c.driveIndex()
	if err != nil {
		return err
	}
	logger := logging.NewComponentLogger(c.log(), "drive").With(logging.Int(logging.FieldDrive, index))

	if exclusive {
		cfg, err := c.ensureConfig()
		if err != nil {
			return err
		}
		lock, err := drivelock.Acquire(cfg.Paths.LockDir, index)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("drive lock release failed",
					logging.Error(err),
					logging.String(logging.FieldEventType, "drive_lock_release_failed"),
				)
			}
		}()
	}

	return c.withLibrary(func(lib *sdlcd.Library) error {
		cd, err := lib.Open(index)
		if err != nil {
			logger.Debug("drive open failed", logging.Error(err))
			return err
		}
		defer cd.Close()
		logger.Debug("drive opened", logging.String(logging.FieldDevice, lib.DriveName(index)))
		return fn(lib, cd)
	})
}

// operationError reports a false return from a control call together with
// whatever SDL left in its error slot.
func operationError(lib *sdlcd.Library, op string, index int) error {
	msg := lib.LastError()
	if msg == "" {
		msg = "SDL reported failure"
	}
	return fmt.Errorf("%w: %s on drive %d: %s", errOperationFailed, op, index, msg)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
