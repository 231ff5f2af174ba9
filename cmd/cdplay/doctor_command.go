package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cdplay/internal/preflight"
	"cdplay/internal/sdlcd"
)

type checkJSON struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the drive, SDL and directories cdplay needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			index, err := ctx.driveIndex()
			if err != nil {
				return err
			}
			cfgCopy := *cfg
			cfgCopy.Drive.Index = index

			var results []preflight.Result
			initErr := ctx.withLibrary(func(lib *sdlcd.Library) error {
				results = preflight.RunAll(cmd.Context(), &cfgCopy, lib)
				return nil
			})
			if initErr != nil {
				results = append(preflight.RunAll(cmd.Context(), &cfgCopy, nil), preflight.Result{
					Name:   "SDL CD-ROM",
					Detail: initErr.Error(),
				})
			}

			failed := 0
			checks := make([]checkJSON, 0, len(results))
			for _, r := range results {
				if !r.Passed {
					failed++
				}
				checks = append(checks, checkJSON{Name: r.Name, Passed: r.Passed, Detail: r.Detail})
			}

			if ctx.jsonOutput() {
				if err := writeJSON(cmd, checks); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for _, r := range results {
					kind := statusOK
					if !r.Passed {
						kind = statusError
					}
					fmt.Fprintln(out, renderStatusLine(r.Name, kind, "", r.Detail, colorize))
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			return nil
		},
	}
}
