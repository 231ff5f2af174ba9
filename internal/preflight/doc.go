// Package preflight provides readiness checks for the drive, the SDL CD-ROM
// subsystem and the filesystem paths cdplay depends on.
//
// The CLI "cdplay doctor" command runs RunAll and prints one line per check.
// Checks never fail hard; each Result carries a pass flag and a short detail.
package preflight
