// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"
)

var copyID bool

var deliverCmd = &cobra.Command{
	Use:   "deliver <destination> <speed>",
	Short: "Register a new package for delivery",
	Long: `Deliver registers a package bound for destination at the given speed
and prints its package id.

Example:
  parcel deliver Jupiter light
  parcel deliver "Alpha Centauri" warp --copy`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Deliver(cmd.Context(), args[0], args[1], copyID)
	},
}

var trackCmd = &cobra.Command{
	Use:   "track <package-id>",
	Short: "Show where a package is",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Track(cmd.Context(), args[0])
	},
}

var destinationCmd = &cobra.Command{
	Use:   "destination <destination>",
	Short: "List packages bound for a destination",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.ListByDestination(cmd.Context(), args[0])
	},
}

var speedCmd = &cobra.Command{
	Use:   "speed <speed>",
	Short: "List packages travelling at a speed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.ListBySpeed(cmd.Context(), args[0])
	},
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of registered packages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Count(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print server and client versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Version(cmd.Context())
	},
}

func init() {
	deliverCmd.Flags().BoolVar(&copyID, "copy", false, "copy the new package id to the clipboard")
}
