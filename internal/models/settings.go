package models

import (
	"slices"
	"time"

	"gorm.io/datatypes"
)

// HomepageSettingsID is the primary key of the singleton settings row.
const HomepageSettingsID = 1

// HomepageSettings holds the ordered featured-project ids. Ids may refer to
// projects that no longer exist.
type HomepageSettings struct {
	ID               int                         `gorm:"primaryKey;autoIncrement:false;default:1" json:"-"`
	FeaturedProjects datatypes.JSONSlice[string] `gorm:"column:featured_projects;type:jsonb;default:'[]'" json:"featuredProjects"`
	UpdatedAt        time.Time                   `json:"-"`
}

// TableName pins the singleton table name.
func (HomepageSettings) TableName() string { return "homepage_settings" }

// NewHomepageSettings returns settings featuring ids in order.
func NewHomepageSettings(ids ...string) HomepageSettings {
	return HomepageSettings{
		ID:               HomepageSettingsID,
		FeaturedProjects: append(datatypes.JSONSlice[string]{}, ids...),
	}
}

// IsFeatured reports whether id is in the featured list.
func (s HomepageSettings) IsFeatured(id string) bool {
	return slices.Contains(s.FeaturedProjects, id)
}

// Toggle flips membership of id: present ids are removed, absent ids are
// appended. Relative order of the other ids is kept.
func (s HomepageSettings) Toggle(id string) HomepageSettings {
	if s.IsFeatured(id) {
		return s.Without(id)
	}
	out := s.Clone()
	out.FeaturedProjects = append(out.FeaturedProjects, id)
	return out
}

// Without returns a copy of s with id removed.
func (s HomepageSettings) Without(id string) HomepageSettings {
	out := s.Clone()
	out.FeaturedProjects = slices.DeleteFunc(out.FeaturedProjects, func(v string) bool { return v == id })
	return out
}

// Clone returns a deep copy of s.
func (s HomepageSettings) Clone() HomepageSettings {
	c := s
	c.FeaturedProjects = append(datatypes.JSONSlice[string]{}, s.FeaturedProjects...)
	return c
}
