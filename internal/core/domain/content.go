package domain

import (
	"errors"
	"slices"
)

var ErrContentNotFound = errors.New("content configuration not found")

// GlobalSettings holds site-wide presentation switches of the landing page.
type GlobalSettings struct {
	SiteTitle       string `json:"site_title" bson:"site_title"`
	SiteDescription string `json:"site_description" bson:"site_description"`
	PrimaryColor    string `json:"primary_color" bson:"primary_color"`
	ShowOrbitBar    bool   `json:"show_orbit_bar" bson:"show_orbit_bar"`
}

// SEO carries page metadata.
type SEO struct {
	MetaTitle       string `json:"meta_title" bson:"meta_title"`
	MetaDescription string `json:"meta_description" bson:"meta_description"`
	OGImage         string `json:"og_image,omitempty" bson:"og_image,omitempty"`
}

// Section is one block of the landing page.
type Section struct {
	ID        string         `json:"id" bson:"id"`
	Type      string         `json:"type" bson:"type"`
	Label     string         `json:"label" bson:"label"`
	Order     int            `json:"order" bson:"order"`
	IsVisible bool           `json:"is_visible" bson:"is_visible"`
	Content   map[string]any `json:"content,omitempty" bson:"content,omitempty"`
	Theme     string         `json:"theme,omitempty" bson:"theme,omitempty"`
}

// PageContent is the landing page configuration the dispatcher renders for
// the home, login and signup views.
type PageContent struct {
	ID             string         `json:"id" bson:"_id"`
	Version        string         `json:"version" bson:"version"`
	LastUpdated    string         `json:"last_updated" bson:"last_updated"`
	Status         string         `json:"status" bson:"status"`
	GlobalSettings GlobalSettings `json:"global_settings" bson:"global_settings"`
	SEO            *SEO           `json:"seo,omitempty" bson:"seo,omitempty"`
	Sections       []Section      `json:"sections" bson:"sections"`
}

// VisibleSections returns the visible sections in display order.
func (c *PageContent) VisibleSections() []Section {
	out := make([]Section, 0, len(c.Sections))
	for _, s := range c.Sections {
		if s.IsVisible {
			out = append(out, s)
		}
	}
	slices.SortStableFunc(out, func(a, b Section) int { return a.Order - b.Order })
	return out
}
