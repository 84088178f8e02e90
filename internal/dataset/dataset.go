// Package dataset holds the static project data the site falls back to when
// the backend has nothing to offer, and the data the backend seeds itself with.
package dataset

import (
	"github.com/onebluedot/site/internal/models"
)

// DemoToken is the access token that switches the admin panel to demo mode.
const DemoToken = "demo-token"

const unsplash = "https://images.unsplash.com/"

var defaults = []models.Project{
	{
		ID:          "komorebi-house",
		Title:       "Komorebi House",
		Category:    models.CategoryArchitecture,
		Location:    "Bangalore, India",
		Year:        "2024",
		Status:      models.StatusCompleted,
		Tagline:     "Capturing the essence of filtered light in modern living spaces.",
		Description: "Modern Japanese-inspired architecture with filtered light creating serene living spaces. This project explores the concept of komorebi - the interplay of light and shadows through leaves.",
		CoverImage:  unsplash + "photo-1613490493576-7fde63acd811?auto=format&fit=crop&w=2071&q=80",
		GalleryImages: []string{
			unsplash + "photo-1600607687939-ce8a6c25118c?auto=format&fit=crop&w=2053&q=80",
			unsplash + "photo-1600566753190-17f0baa2a6c3?auto=format&fit=crop&w=2070&q=80",
		},
	},
	{
		ID:          "urban-sanctuary",
		Title:       "Urban Sanctuary",
		Category:    models.CategoryInterior,
		Location:    "Mumbai, India",
		Year:        "2024",
		Status:      models.StatusCompleted,
		Tagline:     "Creating tranquil spaces within the urban chaos.",
		Description: "Luxury high-rise apartment with panoramic city views and sustainable design principles. This interior design project focuses on creating a peaceful retreat in the heart of the city.",
		CoverImage:  unsplash + "photo-1600607687644-c7171b42498b?auto=format&fit=crop&w=2053&q=80",
		GalleryImages: []string{
			unsplash + "photo-1600585154340-be6161a56a0c?auto=format&fit=crop&w=2070&q=80",
			unsplash + "photo-1600566753190-17f0baa2a6c3?auto=format&fit=crop&w=2070&q=80",
		},
	},
	{
		ID:          "zen-garden",
		Title:       "Zen Garden",
		Category:    models.CategoryLandscape,
		Location:    "Goa, India",
		Year:        "2024",
		Status:      models.StatusCompleted,
		Tagline:     "Where nature and design find perfect harmony.",
		Description: "Minimalist coastal landscape design with clean lines and seamless integration with the natural environment. This project emphasizes sustainable landscaping and water conservation.",
		CoverImage:  unsplash + "photo-1600585154526-990dced4db0d?auto=format&fit=crop&w=2070&q=80",
		GalleryImages: []string{
			unsplash + "photo-1600585154340-be6161a56a0c?auto=format&fit=crop&w=2070&q=80",
			unsplash + "photo-1600607687939-ce8a6c25118c?auto=format&fit=crop&w=2053&q=80",
		},
	},
}

var demo = []models.Project{
	{
		ID:            "demo-project-1",
		Title:         "OBD Studio",
		Category:      models.CategoryInterior,
		Location:      "Hyderabad, India",
		Year:          "2023",
		Status:        models.StatusCompleted,
		Tagline:       "There is beauty in Minimalism and Deep connection with each element that a space comprises of.",
		Description:   "This is a demo project showcasing modern interior design principles with a focus on minimalism and functionality.",
		CoverImage:    unsplash + "photo-1613490493576-7fde63acd811?auto=format&fit=crop&w=800&q=80",
		GalleryImages: []string{},
	},
}

// Fallback returns the homepage projects shown when live data is empty or
// unreachable. The same records seed an empty database.
func Fallback() []models.Project { return clone(defaults) }

// DefaultFeatured returns the featured ids seeded alongside Fallback.
func DefaultFeatured() models.HomepageSettings {
	ids := make([]string, 0, len(defaults))
	for _, p := range defaults {
		ids = append(ids, p.ID)
	}
	return models.NewHomepageSettings(ids...)
}

// DemoProjects returns the admin panel's offline dataset.
func DemoProjects() []models.Project { return clone(demo) }

// DemoSettings returns the featured list matching DemoProjects.
func DemoSettings() models.HomepageSettings {
	return models.NewHomepageSettings("demo-project-1")
}

func clone(in []models.Project) []models.Project {
	out := make([]models.Project, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
