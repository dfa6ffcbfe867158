package catalog

// CategoryID identifies one of the fixed catalog groupings.
type CategoryID string

const (
	Sorting         CategoryID = "sorting"
	Searching       CategoryID = "searching"
	DataStructures  CategoryID = "data-structures"
	GraphAlgorithms CategoryID = "graph-algorithms"
)

// AllCategories is the filter value that matches every category.
const AllCategories CategoryID = "all"

// KnownCategories lists the closed category set in display order.
var KnownCategories = []CategoryID{Sorting, Searching, DataStructures, GraphAlgorithms}

// TimeComplexity holds hand-authored complexity labels. Sorting and
// searching entries use Best/Average/Worst, data structures use the
// per-operation fields, graph traversals only carry Worst.
type TimeComplexity struct {
	Best      string `yaml:"best,omitempty" json:"best,omitempty"`
	Average   string `yaml:"average,omitempty" json:"average,omitempty"`
	Worst     string `yaml:"worst,omitempty" json:"worst,omitempty"`
	Access    string `yaml:"access,omitempty" json:"access,omitempty"`
	Search    string `yaml:"search,omitempty" json:"search,omitempty"`
	Insertion string `yaml:"insertion,omitempty" json:"insertion,omitempty"`
	Deletion  string `yaml:"deletion,omitempty" json:"deletion,omitempty"`
}

// Labeled pairs a time complexity key with its label.
type Labeled struct {
	Key   string
	Label string
}

// Entries returns the defined labels in a stable display order.
func (t TimeComplexity) Entries() []Labeled {
	all := []Labeled{
		{"best", t.Best},
		{"average", t.Average},
		{"worst", t.Worst},
		{"access", t.Access},
		{"search", t.Search},
		{"insertion", t.Insertion},
		{"deletion", t.Deletion},
	}
	out := make([]Labeled, 0, len(all))
	for _, entry := range all {
		if entry.Label != "" {
			out = append(out, entry)
		}
	}
	return out
}

// Algorithm is the metadata record for one catalog entry.
type Algorithm struct {
	ID              string         `yaml:"id" json:"id" validate:"required"`
	Name            string         `yaml:"name" json:"name" validate:"required"`
	Description     string         `yaml:"description" json:"description" validate:"required"`
	Category        CategoryID     `yaml:"category" json:"category" validate:"required,oneof=sorting searching data-structures graph-algorithms"`
	TimeComplexity  TimeComplexity `yaml:"time_complexity" json:"timeComplexity"`
	SpaceComplexity string         `yaml:"space_complexity" json:"spaceComplexity" validate:"required"`
	Stable          *bool          `yaml:"stable,omitempty" json:"stable,omitempty"`
	InPlace         *bool          `yaml:"in_place,omitempty" json:"inPlace,omitempty"`
}

// Category groups algorithm ids for display.
type Category struct {
	ID          CategoryID `yaml:"id" json:"id" validate:"required,oneof=sorting searching data-structures graph-algorithms"`
	Name        string     `yaml:"name" json:"name" validate:"required"`
	Description string     `yaml:"description" json:"description"`
	Algorithms  []string   `yaml:"algorithms" json:"algorithms"`
}

// Content is the long-form material shown on the detail screen.
type Content struct {
	ID                 string   `yaml:"id" json:"id" validate:"required"`
	Title              string   `yaml:"title" json:"title"`
	Overview           string   `yaml:"overview" json:"overview" validate:"required"`
	Algorithm          string   `yaml:"algorithm" json:"algorithm" validate:"required"`
	CodeImplementation string   `yaml:"code_implementation" json:"codeImplementation" validate:"required"`
	Explanation        string   `yaml:"explanation,omitempty" json:"explanation,omitempty"`
	Example            string   `yaml:"example,omitempty" json:"example,omitempty"`
	Advantages         []string `yaml:"advantages,omitempty" json:"advantages,omitempty"`
	Disadvantages      []string `yaml:"disadvantages,omitempty" json:"disadvantages,omitempty"`
	UseCases           []string `yaml:"use_cases,omitempty" json:"useCases,omitempty"`
	Applications       []string `yaml:"applications,omitempty" json:"applications,omitempty"`
	Optimizations      []string `yaml:"optimizations,omitempty" json:"optimizations,omitempty"`
	Variants           []string `yaml:"variants,omitempty" json:"variants,omitempty"`
}
