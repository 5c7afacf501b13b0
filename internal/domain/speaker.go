package domain

// Speaker is a per-event speaker record.
type Speaker struct {
	ID            int               `json:"id"`
	Slug          string            `json:"slug"`
	Link          string            `json:"link"`
	Title         RenderedText      `json:"title"`
	Content       RenderedText      `json:"content"`
	FeaturedMedia int               `json:"featured_media"`
	AvatarURLs    map[string]string `json:"avatar_urls"`
}

// Validate performs the boundary field-presence check for a speaker.
func (s Speaker) Validate() error {
	if s.ID == 0 {
		return ErrMissingField("speaker", "id")
	}
	if s.Title.Rendered == "" {
		return ErrMissingField("speaker", "title")
	}
	return nil
}

// SponsorMeta carries WCPT sponsor metadata.
type SponsorMeta struct {
	Website string `json:"_wcpt_sponsor_website"`
}

// Sponsor is a per-event sponsor record.
type Sponsor struct {
	ID            int          `json:"id"`
	Slug          string       `json:"slug"`
	Link          string       `json:"link"`
	Title         RenderedText `json:"title"`
	Content       RenderedText `json:"content"`
	FeaturedMedia int          `json:"featured_media"`
	Meta          SponsorMeta  `json:"meta"`
}

// Validate performs the boundary field-presence check for a sponsor.
func (s Sponsor) Validate() error {
	if s.ID == 0 {
		return ErrMissingField("sponsor", "id")
	}
	if s.Title.Rendered == "" {
		return ErrMissingField("sponsor", "title")
	}
	return nil
}
