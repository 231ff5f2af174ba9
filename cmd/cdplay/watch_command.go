package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"cdplay/internal/logging"
	"cdplay/internal/mediawatch"
	"cdplay/internal/sdlcd"
)

type statusChange struct {
	Time     time.Time `json:"time"`
	Drive    int       `json:"drive"`
	Status   string    `json:"status"`
	Previous string    `json:"previous,omitempty"`
	Track    int       `json:"track,omitempty"`
	Reason   string    `json:"reason"`

	state sdlcd.Status
}

// statusWatcher re-queries one open drive and reports transitions. A change
// of track while playing counts as a transition.
type statusWatcher struct {
	cd     *sdlcd.CD
	logger *slog.Logger
	emit   func(statusChange) error
	now    func() time.Time

	seen      bool
	last      sdlcd.Status
	lastTrack int
}

func newStatusWatcher(cd *sdlcd.CD, logger *slog.Logger, emit func(statusChange) error) *statusWatcher {
	return &statusWatcher{
		cd:     cd,
		logger: logging.NewComponentLogger(logger, "watch"),
		emit:   emit,
		now:    time.Now,
	}
}

// check queries the drive once and emits a change when the status or the
// current track differs from the previous check.
func (w *statusWatcher) check(reason string) (bool, error) {
	status := w.cd.Status()
	track := -1
	if status == sdlcd.StatusPlaying || status == sdlcd.StatusPaused {
		track, _ = w.cd.CurrentPosition()
	}
	if w.seen && status == w.last && track == w.lastTrack {
		return false, nil
	}

	change := statusChange{
		Time:   w.now(),
		Drive:  w.cd.Index(),
		Status: status.String(),
		Reason: reason,
		state:  status,
	}
	if w.seen {
		change.Previous = w.last.String()
	}
	if track >= 0 {
		change.Track = track + 1
	}

	w.logger.Info("drive status changed",
		logging.String(logging.FieldEventType, "drive_status_changed"),
		logging.Int(logging.FieldDrive, change.Drive),
		logging.String(logging.FieldStatus, change.Status),
		logging.String("previous", change.Previous),
		logging.String("reason", reason),
	)

	w.seen = true
	w.last = status
	w.lastTrack = track
	return true, w.emit(change)
}

// run checks at every tick and on every media event until ctx ends.
func (w *statusWatcher) run(ctx context.Context, interval time.Duration, media <-chan mediawatch.Event) error {
	if _, err := w.check("initial"); err != nil {
		return err
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := w.check("poll"); err != nil {
				return err
			}
		case event := <-media:
			if _, err := w.check("media_" + event.Action); err != nil {
				return err
			}
		}
	}
}

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var interval time.Duration
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Report drive status changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if interval <= 0 {
				interval = time.Duration(cfg.Watch.PollInterval) * time.Second
			}

			runCtx := cmd.Context()
			if duration > 0 {
				var cancel context.CancelFunc
				runCtx, cancel = context.WithTimeout(runCtx, duration)
				defer cancel()
			}

			logger := ctx.log()
			emit := changePrinter(cmd.OutOrStdout(), ctx.jsonOutput())

			return ctx.withDrive(false, func(_ *sdlcd.Library, cd *sdlcd.CD) error {
				media := make(chan mediawatch.Event, 1)
				if cfg.Watch.UseNetlink {
					monitor := mediawatch.New(cfg.Drive.Device, logger, func(_ context.Context, event mediawatch.Event) {
						select {
						case media <- event:
						default:
						}
					})
					if err := monitor.Start(runCtx); err != nil {
						return err
					}
					defer monitor.Stop()
				}

				return newStatusWatcher(cd, logger, emit).run(runCtx, interval, media)
			})
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "Poll interval (default from watch.poll_interval)")
	cmd.Flags().DurationVar(&duration, "for", 0, "Stop after this long (0 runs until interrupted)")
	return cmd
}

// changePrinter writes one line per change: NDJSON with --json, a status
// line otherwise.
func changePrinter(out io.Writer, asJSON bool) func(statusChange) error {
	if asJSON {
		enc := json.NewEncoder(out)
		return func(c statusChange) error { return enc.Encode(c) }
	}
	colorize := shouldColorize(out)
	return func(c statusChange) error {
		message := ""
		if c.Track > 0 {
			message = fmt.Sprintf("track %d", c.Track)
		}
		label := fmt.Sprintf("%s drive %d", c.Time.Format("15:04:05"), c.Drive)
		_, err := fmt.Fprintln(out, renderStatusLine(label, statusKindFor(c.state), statusLabel(c.state), message, colorize))
		return err
	}
}
