package model

// PageType tags a page summary returned by the encyclopedia
type PageType string

const (
	PageTypeStandard       PageType = "standard"
	PageTypeDisambiguation PageType = "disambiguation"
)

// Summary is the page summary lookup result. The related-pages endpoint
// returns the same shape for each candidate.
type Summary struct {
	Type        PageType    `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Extract     string      `json:"extract,omitempty"`
	Thumbnail   *Thumbnail  `json:"thumbnail,omitempty"`
	ContentURLs ContentURLs `json:"content_urls"`

	// Vehicle is merged in from the occupant, never sent by the service
	Vehicle string `json:"-"`
}

// Thumbnail is the lead image of a page
type Thumbnail struct {
	Source string `json:"source"`
}

// ContentURLs holds canonical links to the page
type ContentURLs struct {
	Desktop PageURLs `json:"desktop"`
}

// PageURLs are the links for one rendering target
type PageURLs struct {
	Page string `json:"page"`
}

// RelatedPage is a candidate returned by the related-pages endpoint
type RelatedPage = Summary

// RelatedResponse is the related-pages response body
type RelatedResponse struct {
	Pages []RelatedPage `json:"pages"`
}

// IsDisambiguation reports whether the summary lists several subjects
func (s Summary) IsDisambiguation() bool {
	return s.Type == PageTypeDisambiguation
}

// ThumbnailURL returns the thumbnail source or an empty string
func (s Summary) ThumbnailURL() string {
	if s.Thumbnail == nil {
		return ""
	}
	return s.Thumbnail.Source
}

// PageURL returns the canonical desktop link
func (s Summary) PageURL() string {
	return s.ContentURLs.Desktop.Page
}
