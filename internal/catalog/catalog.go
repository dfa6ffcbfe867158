package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	indexFile  = "catalog.yaml"
	contentDir = "content"
)

//go:embed data
var embedded embed.FS

// ErrInvalid marks payloads that fail validation.
var ErrInvalid = errors.New("invalid catalog")

// Catalog is the immutable set of algorithm records loaded at startup.
type Catalog struct {
	categories []Category
	algorithms []Algorithm
	index      map[string]int
	content    map[string]Content
}

type indexDocument struct {
	Categories []Category  `yaml:"categories"`
	Algorithms []Algorithm `yaml:"algorithms"`
}

// Default loads the payload compiled into the binary.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// LoadDir loads a payload laid out like the embedded one from disk.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads catalog.yaml and content/*.yaml from fsys and validates the result.
func Load(fsys fs.FS) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, indexFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", indexFile, err)
	}
	var doc indexDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", indexFile, err)
	}

	files, err := fs.Glob(fsys, path.Join(contentDir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	contents := make([]Content, 0, len(files))
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var entry Content
		if err := yaml.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		contents = append(contents, entry)
	}
	return New(doc.Categories, doc.Algorithms, contents)
}

// New builds a catalog from already decoded records. Algorithm order is kept
// as given and is the natural order for every listing.
func New(categories []Category, algorithms []Algorithm, contents []Content) (*Catalog, error) {
	if err := validate(categories, algorithms, contents); err != nil {
		return nil, err
	}
	c := &Catalog{
		categories: append([]Category(nil), categories...),
		algorithms: append([]Algorithm(nil), algorithms...),
		index:      make(map[string]int, len(algorithms)),
		content:    make(map[string]Content, len(contents)),
	}
	for i, alg := range c.algorithms {
		c.index[alg.ID] = i
	}
	for _, entry := range contents {
		c.content[entry.ID] = entry
	}
	return c, nil
}

// Algorithms returns every entry in catalog order.
func (c *Catalog) Algorithms() []Algorithm {
	return append([]Algorithm(nil), c.algorithms...)
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.algorithms)
}

// Algorithm looks up one entry by id.
func (c *Catalog) Algorithm(id string) (Algorithm, bool) {
	idx, ok := c.index[id]
	if !ok {
		return Algorithm{}, false
	}
	return c.algorithms[idx], true
}

// Content looks up the long-form material for id.
func (c *Catalog) Content(id string) (Content, bool) {
	entry, ok := c.content[id]
	return entry, ok
}

// Categories returns the category records in display order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Category looks up one category record.
func (c *Catalog) Category(id CategoryID) (Category, bool) {
	for _, category := range c.categories {
		if category.ID == id {
			return category, true
		}
	}
	return Category{}, false
}

// MissingContent lists catalog ids without a content record, in catalog order.
func (c *Catalog) MissingContent() []string {
	var missing []string
	for _, alg := range c.algorithms {
		if _, ok := c.content[alg.ID]; !ok {
			missing = append(missing, alg.ID)
		}
	}
	return missing
}
