package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cdplay/internal/sdlcd"
)

type driveJSON struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
	Status   string `json:"status,omitempty"`
}

type statusJSON struct {
	Drive    int    `json:"drive"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	InDrive  bool   `json:"in_drive"`
	Tracks   int    `json:"tracks"`
	Track    int    `json:"track,omitempty"`
	Frame    int    `json:"frame,omitempty"`
	Position string `json:"position,omitempty"`
}

type trackJSON struct {
	Number   int     `json:"number"`
	ID       int     `json:"id"`
	Audio    bool    `json:"audio"`
	Offset   uint32  `json:"offset"`
	Length   uint32  `json:"length"`
	Start    string  `json:"start"`
	Duration float64 `json:"duration_seconds"`
}

func newDrivesCommand(ctx *commandContext) *cobra.Command {
	var withStatus bool

	cmd := &cobra.Command{
		Use:   "drives",
		Short: "List CD-ROM drives visible to SDL",
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := ctx.driveIndex()
			if err != nil {
				return err
			}
			return ctx.withLibrary(func(lib *sdlcd.Library) error {
				count := lib.NumDrives()
				drives := make([]driveJSON, 0, count)
				for i := 0; i < count; i++ {
					d := driveJSON{Index: i, Name: lib.DriveName(i), Selected: i == selected}
					if withStatus {
						d.Status = probeStatus(lib, i)
					}
					drives = append(drives, d)
				}

				if ctx.jsonOutput() {
					return writeJSON(cmd, drives)
				}

				out := cmd.OutOrStdout()
				if len(drives) == 0 {
					fmt.Fprintln(out, "No CD-ROM drives found")
					return nil
				}
				headers := []string{"#", "Name", "Selected"}
				aligns := []columnAlignment{alignRight, alignLeft, alignLeft}
				if withStatus {
					headers = append(headers, "Status")
					aligns = append(aligns, alignLeft)
				}
				rows := make([][]string, 0, len(drives))
				for _, d := range drives {
					row := []string{strconv.Itoa(d.Index), d.Name, yesNo(d.Selected)}
					if withStatus {
						row = append(row, d.Status)
					}
					rows = append(rows, row)
				}
				fmt.Fprintln(out, renderTable(headers, rows, aligns, nil))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&withStatus, "status", false, "Open each drive and show its status")
	return cmd
}

// probeStatus opens drive index briefly. Drives that cannot be opened report
// the open error instead of a status.
func probeStatus(lib *sdlcd.Library, index int) string {
	cd, err := lib.Open(index)
	if err != nil {
		return err.Error()
	}
	defer cd.Close()
	return statusLabel(cd.Status())
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show drive status and play position",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withDrive(false, func(lib *sdlcd.Library, cd *sdlcd.CD) error {
				status := cd.Status()
				track, frame := cd.CurrentPosition()
				report := statusJSON{
					Drive:   cd.Index(),
					Name:    lib.DriveName(cd.Index()),
					Status:  status.String(),
					InDrive: status.InDrive(),
				}
				if status.InDrive() {
					report.Tracks = len(cd.Tracks())
				}
				if pos := positionText(status, track, frame); pos != "" {
					report.Track = track + 1
					report.Frame = frame
					report.Position = formatMSF(frame)
				}

				if ctx.jsonOutput() {
					return writeJSON(cmd, report)
				}

				out := cmd.OutOrStdout()
				label := fmt.Sprintf("Drive %d", report.Drive)
				if report.Name != "" {
					label = fmt.Sprintf("Drive %d (%s)", report.Drive, report.Name)
				}
				message := positionText(status, track, frame)
				if status == sdlcd.StatusError {
					message = lib.LastError()
				}
				fmt.Fprintln(out, renderStatusLine(label, statusKindFor(status), statusLabel(status), message, shouldColorize(out)))
				return nil
			})
		},
	}
}

func newTracksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "Show the disc's table of contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withDrive(false, func(lib *sdlcd.Library, cd *sdlcd.CD) error {
				// Status refreshes the table of contents SDL keeps on the handle.
				status := cd.Status()
				if !status.InDrive() {
					return fmt.Errorf("no disc in drive %d (%s)", cd.Index(), status)
				}
				tracks := cd.Tracks()

				if ctx.jsonOutput() {
					list := make([]trackJSON, 0, len(tracks))
					for i, t := range tracks {
						list = append(list, trackJSON{
							Number:   i + 1,
							ID:       int(t.ID),
							Audio:    t.IsAudio(),
							Offset:   t.Offset,
							Length:   t.Length,
							Start:    formatMSF(int(t.Offset)),
							Duration: t.Duration().Seconds(),
						})
					}
					return writeJSON(cmd, list)
				}

				out := cmd.OutOrStdout()
				if len(tracks) == 0 {
					fmt.Fprintln(out, "Disc has no tracks")
					return nil
				}
				rows := make([][]string, 0, len(tracks))
				var total uint32
				for i, t := range tracks {
					kind := "audio"
					if !t.IsAudio() {
						kind = "data"
					}
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						kind,
						formatMSF(int(t.Offset)),
						formatClock(int(t.Length)),
						strconv.FormatUint(uint64(t.Length), 10),
					})
					total += t.Length
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Type", "Start", "Length", "Frames"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight},
					[]string{"", fmt.Sprintf("%d tracks", len(tracks)), "", formatClock(int(total)), strconv.FormatUint(uint64(total), 10)},
				))
				return nil
			})
		},
	}
}
