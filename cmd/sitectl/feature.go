package main

import (
	"github.com/spf13/cobra"
)

var featureCmd = &cobra.Command{
	Use:   "feature",
	Short: "Edit the homepage's featured projects",
}

var featureToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Feature a project, or unfeature it when already featured",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _ := loadAdmin(cmd.Context())
		if err := s.ToggleFeature(cmd.Context(), args[0]); err != nil {
			return err
		}
		reportNotice(s)
		return printJSON(cmd.OutOrStdout(), s.Snapshot().Settings)
	},
}

var featureSetCmd = &cobra.Command{
	Use:   "set [ids...]",
	Short: "Replace the featured list",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _ := loadAdmin(cmd.Context())
		if err := s.SetFeatured(cmd.Context(), args); err != nil {
			return err
		}
		reportNotice(s)
		return printJSON(cmd.OutOrStdout(), s.Snapshot().Settings)
	},
}

func init() {
	featureCmd.AddCommand(featureToggleCmd)
	featureCmd.AddCommand(featureSetCmd)
	rootCmd.AddCommand(featureCmd)
}
