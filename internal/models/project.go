package models

import (
	"gorm.io/datatypes"
)

// Category groups portfolio projects on the work page.
type Category string

const (
	CategoryArchitecture Category = "architecture"
	CategoryInterior     Category = "interior"
	CategoryLandscape    Category = "landscape"
)

// Categories lists the fixed categories in display order.
var Categories = []Category{CategoryArchitecture, CategoryInterior, CategoryLandscape}

// Status is the delivery state of a project.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusOngoing   Status = "ongoing"
	StatusUpcoming  Status = "upcoming"
	StatusOnHold    Status = "on-hold"
)

// Project is a portfolio entry. The id is stable once assigned and the
// gallery order is the display order.
type Project struct {
	ID            string                      `gorm:"type:text;primaryKey" json:"id"`
	Title         string                      `gorm:"type:text;not null" json:"title"`
	Category      Category                    `gorm:"type:text;not null" json:"category"`
	Location      string                      `gorm:"type:text;not null" json:"location"`
	Year          string                      `gorm:"type:text;not null" json:"year"`
	Status        Status                      `gorm:"type:text;not null;default:completed" json:"status"`
	Tagline       string                      `gorm:"type:text;not null" json:"tagline"`
	Description   string                      `gorm:"type:text;not null" json:"description"`
	CoverImage    string                      `gorm:"column:cover_image;type:text" json:"cover_image"`
	GalleryImages datatypes.JSONSlice[string] `gorm:"column:gallery_images;type:jsonb;default:'[]'" json:"galleryImages"`
}

// Normalize replaces a nil gallery with an empty one so it encodes as [].
func (p *Project) Normalize() {
	if p.GalleryImages == nil {
		p.GalleryImages = datatypes.JSONSlice[string]{}
	}
}

// Clone returns a deep copy of p.
func (p Project) Clone() Project {
	c := p
	c.GalleryImages = append(datatypes.JSONSlice[string]{}, p.GalleryImages...)
	return c
}

// ProjectInput is the create payload. Required fields mirror the admin form.
type ProjectInput struct {
	ID            string   `json:"id,omitempty"`
	Title         string   `json:"title" validate:"required"`
	Category      Category `json:"category,omitempty" validate:"omitempty,oneof=architecture interior landscape"`
	Location      string   `json:"location" validate:"required"`
	Year          string   `json:"year"`
	Status        Status   `json:"status,omitempty" validate:"omitempty,oneof=completed ongoing upcoming on-hold"`
	Tagline       string   `json:"tagline" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	CoverImage    string   `json:"cover_image"`
	GalleryImages []string `json:"galleryImages"`
}

// Project builds the record for in, applying the form defaults.
func (in ProjectInput) Project() Project {
	p := Project{
		ID:            in.ID,
		Title:         in.Title,
		Category:      in.Category,
		Location:      in.Location,
		Year:          in.Year,
		Status:        in.Status,
		Tagline:       in.Tagline,
		Description:   in.Description,
		CoverImage:    in.CoverImage,
		GalleryImages: append(datatypes.JSONSlice[string]{}, in.GalleryImages...),
	}
	if p.Category == "" {
		p.Category = CategoryArchitecture
	}
	if p.Status == "" {
		p.Status = StatusCompleted
	}
	return p
}

// ProjectPatch is a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Title         *string   `json:"title,omitempty"`
	Category      *Category `json:"category,omitempty" validate:"omitempty,oneof=architecture interior landscape"`
	Location      *string   `json:"location,omitempty"`
	Year          *string   `json:"year,omitempty"`
	Status        *Status   `json:"status,omitempty" validate:"omitempty,oneof=completed ongoing upcoming on-hold"`
	Tagline       *string   `json:"tagline,omitempty"`
	Description   *string   `json:"description,omitempty"`
	CoverImage    *string   `json:"cover_image,omitempty"`
	GalleryImages *[]string `json:"galleryImages,omitempty"`
}

// PatchFrom builds a patch that sets every field of in.
func PatchFrom(in ProjectInput) ProjectPatch {
	p := in.Project()
	gallery := []string(p.GalleryImages)
	return ProjectPatch{
		Title:         &p.Title,
		Category:      &p.Category,
		Location:      &p.Location,
		Year:          &p.Year,
		Status:        &p.Status,
		Tagline:       &p.Tagline,
		Description:   &p.Description,
		CoverImage:    &p.CoverImage,
		GalleryImages: &gallery,
	}
}

// Apply merges the patch into p.
func (pt ProjectPatch) Apply(p *Project) {
	if pt.Title != nil {
		p.Title = *pt.Title
	}
	if pt.Category != nil {
		p.Category = *pt.Category
	}
	if pt.Location != nil {
		p.Location = *pt.Location
	}
	if pt.Year != nil {
		p.Year = *pt.Year
	}
	if pt.Status != nil {
		p.Status = *pt.Status
	}
	if pt.Tagline != nil {
		p.Tagline = *pt.Tagline
	}
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	if pt.CoverImage != nil {
		p.CoverImage = *pt.CoverImage
	}
	if pt.GalleryImages != nil {
		p.GalleryImages = append(datatypes.JSONSlice[string]{}, (*pt.GalleryImages)...)
	}
}

// Columns returns the column/value pairs the patch changes.
func (pt ProjectPatch) Columns() map[string]any {
	cols := map[string]any{}
	if pt.Title != nil {
		cols["title"] = *pt.Title
	}
	if pt.Category != nil {
		cols["category"] = *pt.Category
	}
	if pt.Location != nil {
		cols["location"] = *pt.Location
	}
	if pt.Year != nil {
		cols["year"] = *pt.Year
	}
	if pt.Status != nil {
		cols["status"] = *pt.Status
	}
	if pt.Tagline != nil {
		cols["tagline"] = *pt.Tagline
	}
	if pt.Description != nil {
		cols["description"] = *pt.Description
	}
	if pt.CoverImage != nil {
		cols["cover_image"] = *pt.CoverImage
	}
	if pt.GalleryImages != nil {
		cols["gallery_images"] = datatypes.JSONSlice[string](append([]string{}, (*pt.GalleryImages)...))
	}
	return cols
}

// ImageURLs returns the cover and gallery references of p.
func (p Project) ImageURLs() []string {
	out := make([]string, 0, len(p.GalleryImages)+1)
	if p.CoverImage != "" {
		out = append(out, p.CoverImage)
	}
	return append(out, p.GalleryImages...)
}
