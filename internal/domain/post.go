package domain

type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type LinkPreview struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type Counts struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Reposts  int `json:"reposts"`
}

type Post struct {
	ID     string       `json:"id"`             // activity identifier, may be empty
	Author Author       `json:"author"`
	Date   string       `json:"date,omitempty"` // free-text, locale-dependent
	Text   string       `json:"text"`           // whitespace-normalized
	Images []string     `json:"images"`         // de-duplicated, first-occurrence order
	Link   *LinkPreview `json:"link,omitempty"` // present only when a preview is found
	Counts Counts       `json:"counts"`
	URL    string       `json:"url,omitempty"` // canonical permalink if derivable
}

// HasContent reports whether the post carries any text or images. Posts
// without either are dropped during extraction.
func (p *Post) HasContent() bool {
	return p.Text != "" || len(p.Images) > 0
}
