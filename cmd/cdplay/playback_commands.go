package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cdplay/internal/logging"
	"cdplay/internal/sdlcd"
)

type actionJSON struct {
	Drive  int    `json:"drive"`
	Action string `json:"action"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

func newPlaybackCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newPlayCommand(ctx),
		newPlayTracksCommand(ctx),
		newControlCommand(ctx, "pause", "Pause playback", "Paused", (*sdlcd.CD).Pause),
		newControlCommand(ctx, "resume", "Resume paused playback", "Resumed", (*sdlcd.CD).Resume),
		newControlCommand(ctx, "stop", "Stop playback", "Stopped", (*sdlcd.CD).Stop),
		newControlCommand(ctx, "eject", "Eject the disc", "Ejected", (*sdlcd.CD).Eject),
	}
}

// runControl takes the drive lock, runs one control call and reports it.
func runControl(ctx *commandContext, cmd *cobra.Command, action string, call func(*sdlcd.Library, *sdlcd.CD) (bool, string, error)) error {
	return ctx.withDrive(true, func(lib *sdlcd.Library, cd *sdlcd.CD) error {
		lib.ClearError()
		ok, detail, err := call(lib, cd)
		if err != nil {
			return err
		}

		logger := logging.NewComponentLogger(ctx.log(), "playback")
		if !ok {
			opErr := operationError(lib, action, cd.Index())
			logger.Debug("control call failed",
				logging.Int(logging.FieldDrive, cd.Index()),
				logging.String("action", action),
				logging.Error(opErr),
			)
			return opErr
		}
		logger.Debug("control call succeeded",
			logging.Int(logging.FieldDrive, cd.Index()),
			logging.String("action", action),
		)

		if ctx.jsonOutput() {
			return writeJSON(cmd, actionJSON{Drive: cd.Index(), Action: action, OK: true, Detail: detail})
		}
		fmt.Fprintln(cmd.OutOrStdout(), detail)
		return nil
	})
}

func newControlCommand(ctx *commandContext, use, short, verb string, call func(*sdlcd.CD) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runControl(ctx, cmd, use, func(_ *sdlcd.Library, cd *sdlcd.CD) (bool, string, error) {
				return call(cd), fmt.Sprintf("%s drive %d", verb, cd.Index()), nil
			})
		},
	}
}

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var track int

	cmd := &cobra.Command{
		Use:   "play [start] [length]",
		Short: "Play the disc, a track, or a frame range",
		Long: `Play the whole disc when called without arguments.

start and length are frame counts (75 frames per second) or mm:ss[:ff]
positions. With only start, playback runs to the end of the disc.
--track N plays from track N to the end of the disc.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if track > 0 && len(args) > 0 {
				return errors.New("--track cannot be combined with a frame range")
			}
			var start, length int
			var err error
			if len(args) > 0 {
				if start, err = parsePosition(args[0]); err != nil {
					return err
				}
			}
			if len(args) > 1 {
				if length, err = parsePosition(args[1]); err != nil {
					return err
				}
			}

			return runControl(ctx, cmd, "play", func(_ *sdlcd.Library, cd *sdlcd.CD) (bool, string, error) {
				status := cd.Status()
				if !status.InDrive() {
					return false, "", fmt.Errorf("no disc in drive %d (%s)", cd.Index(), status)
				}
				switch {
				case track > 0:
					return cd.PlayTracks(track-1, 0, 0, 0),
						fmt.Sprintf("Playing drive %d from track %d", cd.Index(), track), nil
				case len(args) == 0:
					return cd.PlayTracks(0, 0, 0, 0),
						fmt.Sprintf("Playing drive %d", cd.Index()), nil
				}
				if len(args) == 1 {
					length = discEnd(cd.Tracks()) - start
					if length <= 0 {
						return false, "", fmt.Errorf("start %s is past the end of the disc", formatMSF(start))
					}
				}
				return cd.Play(start, length),
					fmt.Sprintf("Playing drive %d from %s for %s", cd.Index(), formatMSF(start), formatClock(length)), nil
			})
		},
	}

	cmd.Flags().IntVarP(&track, "track", "t", 0, "Start at track N (1-based)")
	return cmd
}

// discEnd returns the frame just past the last track.
func discEnd(tracks []sdlcd.Track) int {
	if len(tracks) == 0 {
		return 0
	}
	last := tracks[len(tracks)-1]
	return int(last.Offset + last.Length)
}

func newPlayTracksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "play-tracks <start-track> <start-frame> <ntracks> <nframes>",
		Short: "Call SDL_CDPlayTracks with raw arguments",
		Long: `Pass the four SDL_CDPlayTracks arguments through unchanged.

start-track is the zero-based track index. ntracks=0 and nframes=0 play to
the end of the disc. Ranges are checked by SDL, not by cdplay; put -- before
negative values so they are not read as flags.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, len(args))
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("argument %d: %q is not an integer", i+1, arg)
				}
				values[i] = n
			}
			return runControl(ctx, cmd, "play-tracks", func(_ *sdlcd.Library, cd *sdlcd.CD) (bool, string, error) {
				// SDL only knows the table of contents after a status query.
				cd.Status()
				ok := cd.PlayTracks(values[0], values[1], values[2], values[3])
				return ok, fmt.Sprintf("Playing drive %d tracks %d+%d", cd.Index(), values[0], values[2]), nil
			})
		},
	}
}
