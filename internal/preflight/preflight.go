package preflight

import (
	"context"

	"cdplay/internal/config"
	"cdplay/internal/sdlcd"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// lib must already be initialized when it is backed by libSDL.
func RunAll(ctx context.Context, cfg *config.Config, lib *sdlcd.Library) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Lock directory", cfg.Paths.LockDir))

	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}

	if cfg.Drive.Device != "" {
		results = append(results, CheckDevice(cfg.Drive.Device))
	}

	if lib != nil {
		results = append(results, CheckDrive(ctx, lib, cfg.Drive.Index))
	}

	return results
}
