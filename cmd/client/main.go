// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package main provides the parcel CLI client.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-parcel-tracker/internal/adapter"
	"github.com/MKhiriev/go-parcel-tracker/internal/client"
	"github.com/MKhiriev/go-parcel-tracker/internal/config"
	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var (
	// flags holds the values of the persistent connection flags.
	flags config.ClientAdapter

	// app is initialised by PersistentPreRunE.
	app *client.App
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "parcel",
	Short: "parcel talks to the interstellar package tracking server",
	Long: `parcel registers packages for delivery and queries the tracking
server for their state. Connection settings come from flags, ADAPTER_*
environment variables or a .env file, in that order of precedence.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.HTTPAddress, "address", "a", "", "server address (default localhost:8080)")
	pf.DurationVar(&flags.RequestTimeout, "timeout", 0, "request timeout (default 5s)")
	pf.StringVar(&flags.AccessHeader, "access-header", "", "access header name (default X-Interstellar-Token)")
	pf.StringVar(&flags.AccessToken, "token", "", "access header value")

	rootCmd.AddCommand(deliverCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(destinationCmd)
	rootCmd.AddCommand(speedCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(versionCmd)
}

// initApp loads the client config and builds the App shared by every
// command.
func initApp(cmd *cobra.Command, args []string) error {
	log := logger.NewClientLogger("parcel-client")

	cfg, err := config.GetClientConfig(config.ClientConfig{Adapter: flags})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	trackerAdapter, err := adapter.NewHTTPTrackerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create tracker adapter: %w", err)
	}

	app, err = client.NewApp(trackerAdapter, cmd.OutOrStdout(), log,
		client.WithBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
	if err != nil {
		return fmt.Errorf("create client app: %w", err)
	}

	log.Debug().
		Str("command", cmd.Name()).
		Str("address", cfg.Adapter.HTTPAddress).
		Dur("timeout", cfg.Adapter.RequestTimeout).
		Msg("client command")

	return nil
}
