package model

import "strings"

// ProfileStatus distinguishes the two profile variants
type ProfileStatus string

const (
	ProfileFound      ProfileStatus = "found"
	ProfileUnresolved ProfileStatus = "unresolved"
)

// ResolvedProfile is the per-person output handed to a sink.
// Found profiles fill the biography fields, unresolved ones fill
// PersonName and DisambiguationLink.
type ResolvedProfile struct {
	Status ProfileStatus `json:"status"`

	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Extract      string `json:"extract,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Vehicle      string `json:"vehicle,omitempty"`

	PersonName         string `json:"person_name,omitempty"`
	DisambiguationLink string `json:"disambiguation_link,omitempty"`
}

// FoundProfile builds a found profile from a summary
func FoundProfile(s Summary) ResolvedProfile {
	return ResolvedProfile{
		Status:       ProfileFound,
		Title:        s.Title,
		Description:  s.Description,
		Extract:      s.Extract,
		ThumbnailURL: s.ThumbnailURL(),
		Vehicle:      s.Vehicle,
	}
}

// UnresolvedProfile builds the placeholder for a disambiguation summary
// no candidate could replace
func UnresolvedProfile(s Summary) ResolvedProfile {
	return ResolvedProfile{
		Status:             ProfileUnresolved,
		PersonName:         s.Title,
		DisambiguationLink: s.PageURL(),
	}
}

// IsFound reports whether the profile carries a biography
func (p ResolvedProfile) IsFound() bool {
	return p.Status == ProfileFound
}

// DisplayTitle returns the title with underscores turned into spaces
func (p ResolvedProfile) DisplayTitle() string {
	return strings.ReplaceAll(p.Title, "_", " ")
}

// VehicleOr returns the vehicle, or fallback when none is known
func (p ResolvedProfile) VehicleOr(fallback string) string {
	if p.Vehicle == "" {
		return fallback
	}
	return p.Vehicle
}
