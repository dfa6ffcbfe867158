// Package detail resolves one catalog entry for the detail screen and lays
// its content out into tabs.
package detail

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/csheth/algoscout/internal/catalog"
)

// CopiedIndicatorTTL is how long the "copied" marker stays visible.
const CopiedIndicatorTTL = 2 * time.Second

// ErrNotFound is returned when either the metadata or the content is missing.
var ErrNotFound = errors.New("algorithm not found")

// Tab is one of the detail screen's content panes.
type Tab int

const (
	TabOverview Tab = iota
	TabImplementation
	TabExplanation
	TabUsage
)

// Tabs lists the panes in display order.
var Tabs = []Tab{TabOverview, TabImplementation, TabExplanation, TabUsage}

func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "overview"
	case TabImplementation:
		return "implementation"
	case TabExplanation:
		return "explanation"
	case TabUsage:
		return "usage"
	default:
		return fmt.Sprintf("tab(%d)", int(t))
	}
}

// Label is the heading shown in the tab bar.
func (t Tab) Label() string {
	switch t {
	case TabOverview:
		return "概要"
	case TabImplementation:
		return "実装"
	case TabExplanation:
		return "解説"
	case TabUsage:
		return "応用"
	default:
		return t.String()
	}
}

// ParseTab accepts the names returned by Tab.String.
func ParseTab(name string) (Tab, error) {
	for _, tab := range Tabs {
		if strings.EqualFold(name, tab.String()) {
			return tab, nil
		}
	}
	return TabOverview, fmt.Errorf("unknown tab %q", name)
}

// Page is a fully resolved entry.
type Page struct {
	Algorithm catalog.Algorithm
	Content   catalog.Content
}

// Resolve looks up both records for id. Partial pages are never returned.
func Resolve(cat *catalog.Catalog, id string) (Page, error) {
	alg, ok := cat.Algorithm(id)
	if !ok {
		return Page{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	content, ok := cat.Content(id)
	if !ok {
		return Page{}, fmt.Errorf("%w: %q has no content", ErrNotFound, id)
	}
	return Page{Algorithm: alg, Content: content}, nil
}

// Title prefers the content title over the catalog name.
func (p Page) Title() string {
	if p.Content.Title != "" {
		return p.Content.Title
	}
	return p.Algorithm.Name
}

// Section is a headed block of prose, preformatted text or a bullet list.
type Section struct {
	Heading string
	Body    string
	Items   []string
	Code    bool
}

// Sections returns the blocks shown on tab. Optional fields that are empty
// produce no section.
func (p Page) Sections(tab Tab) []Section {
	c := p.Content
	var out []Section
	addText := func(heading, body string, code bool) {
		if strings.TrimSpace(body) == "" {
			return
		}
		out = append(out, Section{Heading: heading, Body: body, Code: code})
	}
	addList := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		out = append(out, Section{Heading: heading, Items: items})
	}

	switch tab {
	case TabOverview:
		addText("概要", c.Overview, false)
		addText("アルゴリズムの手順", c.Algorithm, false)
		addText("実行例", c.Example, false)
	case TabImplementation:
		addText("C言語実装", c.CodeImplementation, true)
	case TabExplanation:
		addText("詳細解説", c.Explanation, false)
		addList("利点", c.Advantages)
		addList("欠点", c.Disadvantages)
	case TabUsage:
		addList("使用例", c.UseCases)
		addList("実用的な応用", c.Applications)
		addList("最適化手法", c.Optimizations)
		addList("バリエーション", c.Variants)
	}
	return out
}
