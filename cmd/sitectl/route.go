package main

import (
	"github.com/spf13/cobra"

	"github.com/onebluedot/site/internal/navigation"
)

var navigateFrom string

var routeCmd = &cobra.Command{
	Use:   "route <path>",
	Short: "Show which page a path resolves to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(cmd.OutOrStdout(), navigation.NewResolver(cfg.BasePath).Parse(args[0]))
	},
}

var navigateCmd = &cobra.Command{
	Use:   "navigate <page> [project-id]",
	Short: "Navigate to a page and print the resulting path and route",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id string
		if len(args) == 2 {
			id = args[1]
		}
		hist := navigation.NewMemoryHistory(navigateFrom)
		nav := navigation.NewNavigator(navigation.NewResolver(cfg.BasePath), hist)
		r := nav.NavigateTo(navigation.Page(args[0]), id)
		return printJSON(cmd.OutOrStdout(), struct {
			Path  string           `json:"path"`
			Route navigation.Route `json:"route"`
		}{hist.Location(), r})
	},
}

func init() {
	navigateCmd.Flags().StringVar(&navigateFrom, "from", "/", "path to start from")
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(navigateCmd)
}
