package main

import (
	"bytes"
	"strings"
	"testing"

	"cdplay/internal/config"
	"cdplay/internal/sdlcd"
	"cdplay/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	native     *testsupport.FakeCD
	configPath string
}

func setupCLITestEnv(t *testing.T, drives ...string) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("CDPLAY_DRIVE", "")

	cfg := testsupport.NewConfig(t)
	cfg.Logging.Level = "error"
	configPath := testsupport.WriteConfig(t, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		native:     testsupport.NewFakeCD(drives...),
		configPath: configPath,
	}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(sdlcd.NewLibrary(env.native))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n%s", needle, haystack)
	}
}

func sampleDisc() sdlcd.Snapshot {
	return sdlcd.Snapshot{
		NumTracks:    3,
		CurrentTrack: 1,
		CurrentFrame: 6075,
		Tracks: []sdlcd.Track{
			{ID: 1, Type: 0, Offset: 150, Length: 13500},
			{ID: 2, Type: 0, Offset: 13650, Length: 9000},
			{ID: 3, Type: 4, Offset: 22650, Length: 4500},
		},
	}
}
