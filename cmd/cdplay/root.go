package main

import (
	"github.com/spf13/cobra"

	"cdplay/internal/sdlcd"
)

// newRootCommand builds the command tree around lib. Tests pass a Library
// backed by a scripted native layer.
func newRootCommand(lib *sdlcd.Library) *cobra.Command {
	var configFlag string
	var driveFlag int
	var jsonFlag bool

	ctx := newCommandContext(lib, &configFlag, &driveFlag, &jsonFlag)

	rootCmd := &cobra.Command{
		Use:           "cdplay",
		Short:         "Control CD audio playback through SDL",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().IntVarP(&driveFlag, "drive", "d", -1, "SDL drive index (default from config)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON")

	rootCmd.AddCommand(newDrivesCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newTracksCommand(ctx))
	for _, cmd := range newPlaybackCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
