package core

import "time"

// Section is a named, ordered group of saved links.
type Section struct {
	ID        int64
	Name      string
	Color     string
	SortOrder int
	CreatedAt time.Time
	Links     []Link
}

// Link is a saved reference inside a section.
type Link struct {
	ID        int64
	SectionID int64
	Title     string
	URL       string
	SortOrder int
	CreatedAt time.Time
}

// SectionUpdate carries the mutable section fields. Nil means "leave as is".
type SectionUpdate struct {
	Name  *string
	Color *string
}

// LinkUpdate carries the mutable link fields. Nil means "leave as is".
type LinkUpdate struct {
	Title *string
	URL   *string
}
