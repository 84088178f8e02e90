package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/onebluedot/site/internal/models"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List and edit portfolio projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st := loadAdmin(cmd.Context())
		return printJSON(cmd.OutOrStdout(), st.Projects)
	},
}

var projectsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if isDemo() {
			_, st := loadAdmin(cmd.Context())
			p, ok := findProject(st.Projects, args[0])
			if !ok {
				return fmt.Errorf("project %q not found", args[0])
			}
			return printJSON(cmd.OutOrStdout(), p)
		}
		p, err := api.GetProject(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), p)
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		var in models.ProjectInput
		applyProjectFlags(cmd.Flags(), &in)

		s, _ := loadAdmin(cmd.Context())
		p, err := s.SaveProject(cmd.Context(), "", in)
		if err != nil {
			return err
		}
		reportNotice(s)
		return printJSON(cmd.OutOrStdout(), p)
	},
}

var projectsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project; fields without a flag keep their value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st := loadAdmin(cmd.Context())
		cur, ok := findProject(st.Projects, args[0])
		if !ok {
			return fmt.Errorf("project %q not found", args[0])
		}
		in := inputFrom(cur)
		applyProjectFlags(cmd.Flags(), &in)

		p, err := s.SaveProject(cmd.Context(), cur.ID, in)
		if err != nil {
			return err
		}
		reportNotice(s)
		return printJSON(cmd.OutOrStdout(), p)
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project and drop it from the featured list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _ := loadAdmin(cmd.Context())
		if err := s.DeleteProject(cmd.Context(), args[0]); err != nil {
			return err
		}
		reportNotice(s)
		return printJSON(cmd.OutOrStdout(), s.Snapshot().Settings)
	},
}

func init() {
	for _, c := range []*cobra.Command{projectsCreateCmd, projectsUpdateCmd} {
		f := c.Flags()
		f.String("title", "", "project title")
		f.String("category", "", "architecture, interior or landscape")
		f.String("location", "", "project location")
		f.String("year", "", "year of completion")
		f.String("status", "", "completed, ongoing, upcoming or on-hold")
		f.String("tagline", "", "one line summary")
		f.String("description", "", "long description")
		f.String("cover", "", "cover image URL")
		f.StringSlice("gallery", nil, "gallery image URLs, in display order")
	}
	projectsCreateCmd.Flags().String("id", "", "project id (generated when empty)")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsGetCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsUpdateCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
	rootCmd.AddCommand(projectsCmd)
}

func findProject(ps []models.Project, id string) (models.Project, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

func inputFrom(p models.Project) models.ProjectInput {
	return models.ProjectInput{
		ID:            p.ID,
		Title:         p.Title,
		Category:      p.Category,
		Location:      p.Location,
		Year:          p.Year,
		Status:        p.Status,
		Tagline:       p.Tagline,
		Description:   p.Description,
		CoverImage:    p.CoverImage,
		GalleryImages: append([]string(nil), p.GalleryImages...),
	}
}

// applyProjectFlags copies every flag the user set onto in.
func applyProjectFlags(f *pflag.FlagSet, in *models.ProjectInput) {
	str := func(name string, dst *string) {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}
	if f.Lookup("id") != nil {
		str("id", &in.ID)
	}
	str("title", &in.Title)
	str("location", &in.Location)
	str("year", &in.Year)
	str("tagline", &in.Tagline)
	str("description", &in.Description)
	str("cover", &in.CoverImage)
	if f.Changed("category") {
		v, _ := f.GetString("category")
		in.Category = models.Category(v)
	}
	if f.Changed("status") {
		v, _ := f.GetString("status")
		in.Status = models.Status(v)
	}
	if f.Changed("gallery") {
		in.GalleryImages, _ = f.GetStringSlice("gallery")
	}
}
