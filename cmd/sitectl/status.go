package main

import (
	"github.com/spf13/cobra"

	"github.com/onebluedot/site/internal/featured"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe the API and report whether the database is set up",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(cmd.OutOrStdout(), api.TestConnection(cmd.Context()))
	},
}

var featuredCmd = &cobra.Command{
	Use:   "featured",
	Short: "Resolve the projects the homepage would show",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(cmd.OutOrStdout(), featured.NewResolver(api).Resolve(cmd.Context()))
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(featuredCmd)
}
