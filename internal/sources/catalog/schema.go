package catalog

// File represents the top-level structure of the catalog seed yaml.
type File struct {
	Books []BookEntry `yaml:"books"`
}

// BookEntry is one catalog row as written in the seed file.
type BookEntry struct {
	Title     string `yaml:"title"`
	Author    string `yaml:"author"`
	Category  string `yaml:"category,omitempty"`
	Publisher string `yaml:"publisher,omitempty"`
}
