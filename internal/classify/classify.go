// Package classify maps complexity labels and category ids to display
// classes. Labels are hand-authored strings; nothing here parses them.
package classify

import (
	"strings"

	"github.com/csheth/algoscout/internal/catalog"
)

// Class is the display bucket for a complexity label.
type Class string

const (
	Constant    Class = "constant"
	Logarithmic Class = "logarithmic"
	Quadratic   Class = "quadratic"
	Linear      Class = "linear"
	Unknown     Class = "unknown"
)

// Tone is a named display color.
type Tone string

const (
	ToneGreen  Tone = "green"
	ToneBlue   Tone = "blue"
	ToneRed    Tone = "red"
	ToneYellow Tone = "yellow"
	TonePurple Tone = "purple"
	ToneOrange Tone = "orange"
	ToneGray   Tone = "gray"
)

// Rule is one row of the complexity priority table.
type Rule struct {
	Class   Class
	Matches func(label string) bool
}

func contains(subs ...string) func(string) bool {
	return func(label string) bool {
		for _, sub := range subs {
			if strings.Contains(label, sub) {
				return true
			}
		}
		return false
	}
}

// Rules is evaluated top to bottom and the first match wins. The "1" test
// is a plain substring check, so "O(n-1)" or "O(n^1.5)" land in Constant.
var Rules = []Rule{
	{Class: Constant, Matches: contains("1")},
	{Class: Logarithmic, Matches: contains("log")},
	{Class: Quadratic, Matches: contains("n²", "n^2")},
	{Class: Linear, Matches: contains("n")},
}

// Complexity classifies a label using Rules, falling back to Unknown.
func Complexity(label string) Class {
	for _, rule := range Rules {
		if rule.Matches(label) {
			return rule.Class
		}
	}
	return Unknown
}

// Tone returns the color used to render the class.
func (c Class) Tone() Tone {
	switch c {
	case Constant:
		return ToneGreen
	case Logarithmic:
		return ToneBlue
	case Quadratic:
		return ToneRed
	case Linear:
		return ToneYellow
	default:
		return ToneGray
	}
}

// CategoryName returns the short badge label for a category. Unknown ids
// are returned unchanged.
func CategoryName(id catalog.CategoryID) string {
	switch id {
	case catalog.Sorting:
		return "ソート"
	case catalog.Searching:
		return "探索"
	case catalog.DataStructures:
		return "データ構造"
	case catalog.GraphAlgorithms:
		return "グラフ"
	default:
		return string(id)
	}
}

// CategoryTone returns the badge color for a category.
func CategoryTone(id catalog.CategoryID) Tone {
	switch id {
	case catalog.Sorting:
		return ToneBlue
	case catalog.Searching:
		return ToneGreen
	case catalog.DataStructures:
		return TonePurple
	case catalog.GraphAlgorithms:
		return ToneOrange
	default:
		return ToneGray
	}
}
