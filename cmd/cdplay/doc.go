// Package main hosts the cdplay CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into calls on the
// SDL CD-ROM binding in internal/sdlcd: drive enumeration, status and table
// of contents queries, playback control, and a long-running status watcher.
// It centralizes configuration resolution, drive locking, and structured
// logging setup so subcommands only describe what they do with the drive.
//
// Keep this package lean: new drive behaviour belongs in internal/sdlcd first
// and is surfaced here through a dedicated command or flag.
package main
