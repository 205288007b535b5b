package catalog

// Book mirrors a single record held by the record store.
type Book struct {
	ID            string `json:"_id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"publishedYear"`
	Available     bool   `json:"available"`
	Pages         int    `json:"pages"`
	Language      string `json:"language"`
}

// StatusLabel returns the display label for the book's availability.
func (b Book) StatusLabel() string {
	if b.Available {
		return "Available"
	}
	return "Issued"
}

// Draft is the payload for creating a new book. The record store assigns
// the identifier.
type Draft struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"publishedYear"`
	Available     bool   `json:"available"`
	Pages         int    `json:"pages"`
	Language      string `json:"language"`
}

// Edit is the payload for updating an existing book. The store replaces the
// listed fields wholesale; identifier, pages, and language stay as-is.
type Edit struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"publishedYear"`
	Available     bool   `json:"available"`
}
