// Command consentform runs the consent form service and its offline
// helpers: serve (HTTP endpoint), render (payload JSON to PDF), and fill
// (interactive terminal entry).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-consentform/internal/logger"
)

var (
	configPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:   "consentform",
		Short: "Collect, render, and deliver child photography consent forms",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(verbose)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to the TOML configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newServeCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newFillCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
