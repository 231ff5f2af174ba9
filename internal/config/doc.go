// Package config loads, normalizes, and validates cdplay configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the CDPLAY_DRIVE environment
// fallback. Commands obtain the drive index, lock directory, logging and
// watch settings from the Config type instead of reading flags or files
// themselves.
package config
