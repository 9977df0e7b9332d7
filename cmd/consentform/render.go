package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-consentform/internal/config"
	"github.com/goliatone/go-consentform/pkg/form"
	"github.com/goliatone/go-consentform/pkg/renderers/pdf"
)

func newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <payload.json>",
		Short: "Render a submission payload to PDF without sending anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read payload: %w", err)
			}
			var payload form.Payload
			if err := json.Unmarshal(data, &payload); err != nil {
				return fmt.Errorf("parse payload: %w", err)
			}
			return renderPayload(cmd, payload, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (defaults to the document's canonical filename)")
	return cmd
}

func renderPayload(cmd *cobra.Command, payload form.Payload, output string) error {
	if err := payload.Validate(); err != nil {
		return fmt.Errorf("invalid payload: %s", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	record := payload.Record(organisationFromConfig(cfg), timeNow())
	doc, err := pdf.New().Render(context.Background(), record)
	if err != nil {
		return err
	}

	if output == "" {
		output = doc.Filename
	}
	if err := os.WriteFile(output, doc.Bytes, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d pages)\n", output, doc.Pages)
	return nil
}
