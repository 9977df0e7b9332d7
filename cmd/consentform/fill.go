package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-consentform/pkg/consentprompt"
)

// timeNow is a seam for tests; the commands otherwise use the wall clock.
var timeNow = time.Now

func newFillCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill in a consent form interactively and render it to PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := consentprompt.Fill(cmd.Context(), consentprompt.NewSurveyDriver())
			if err != nil {
				if errors.Is(err, consentprompt.ErrAborted) {
					return errors.New("cancelled")
				}
				return err
			}
			return renderPayload(cmd, payload, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (defaults to the document's canonical filename)")
	return cmd
}
