package compare

import (
	"github.com/csheth/algoscout/internal/catalog"
	"github.com/csheth/algoscout/internal/classify"
)

// NotAvailable is rendered for attributes an algorithm does not define.
const NotAvailable = "N/A"

// RowKey names a comparison attribute.
type RowKey string

const (
	RowCategory RowKey = "category"
	RowBest     RowKey = "best"
	RowAverage  RowKey = "average"
	RowWorst    RowKey = "worst"
	RowSpace    RowKey = "space"
	RowStable   RowKey = "stable"
	RowInPlace  RowKey = "inPlace"
)

var rowLabels = map[RowKey]string{
	RowCategory: "カテゴリー",
	RowBest:     "最良時間計算量",
	RowAverage:  "平均時間計算量",
	RowWorst:    "最悪時間計算量",
	RowSpace:    "空間計算量",
	RowStable:   "安定ソート",
	RowInPlace:  "インプレース",
}

// Label returns the header text for a row.
func (k RowKey) Label() string {
	if label, ok := rowLabels[k]; ok {
		return label
	}
	return string(k)
}

// Cell is one table value. Class is empty when the cell carries no color,
// and Flag is set only for boolean rows that the algorithm defines.
type Cell struct {
	Text  string         `json:"text"`
	Class classify.Class `json:"class,omitempty"`
	Flag  *bool          `json:"flag,omitempty"`
}

// Row is one attribute across every selected algorithm.
type Row struct {
	Key   RowKey `json:"key"`
	Label string `json:"label"`
	Cells []Cell `json:"cells"`
}

// Column identifies one compared algorithm.
type Column struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Table is the pivoted comparison: attribute rows by algorithm columns.
type Table struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Empty reports whether there is nothing to compare.
func (t Table) Empty() bool { return len(t.Columns) == 0 }

// BuildTable pivots the selected ids into a table. Ids missing from the
// catalog are skipped. Stable and in-place rows appear only when at least
// one selected algorithm defines them.
func BuildTable(cat *catalog.Catalog, ids []string) Table {
	algs := make([]catalog.Algorithm, 0, len(ids))
	for _, id := range ids {
		if alg, ok := cat.Algorithm(id); ok {
			algs = append(algs, alg)
		}
	}
	if len(algs) == 0 {
		return Table{}
	}

	table := Table{Columns: make([]Column, 0, len(algs))}
	for _, alg := range algs {
		table.Columns = append(table.Columns, Column{ID: alg.ID, Name: alg.Name})
	}

	row := func(key RowKey, cell func(catalog.Algorithm) Cell) Row {
		r := Row{Key: key, Label: key.Label(), Cells: make([]Cell, 0, len(algs))}
		for _, alg := range algs {
			r.Cells = append(r.Cells, cell(alg))
		}
		return r
	}

	table.Rows = append(table.Rows,
		row(RowCategory, func(alg catalog.Algorithm) Cell {
			return Cell{Text: categoryLabel(cat, alg.Category)}
		}),
		row(RowBest, func(alg catalog.Algorithm) Cell {
			return complexityCell(alg.TimeComplexity.Best, alg.TimeComplexity.Worst)
		}),
		row(RowAverage, func(alg catalog.Algorithm) Cell {
			return complexityCell(alg.TimeComplexity.Average, alg.TimeComplexity.Worst)
		}),
		row(RowWorst, func(alg catalog.Algorithm) Cell {
			return complexityCell(alg.TimeComplexity.Worst)
		}),
		row(RowSpace, func(alg catalog.Algorithm) Cell {
			return complexityCell(alg.SpaceComplexity)
		}),
	)

	if anyDefined(algs, func(alg catalog.Algorithm) *bool { return alg.Stable }) {
		table.Rows = append(table.Rows, row(RowStable, func(alg catalog.Algorithm) Cell {
			return flagCell(alg.Stable)
		}))
	}
	if anyDefined(algs, func(alg catalog.Algorithm) *bool { return alg.InPlace }) {
		table.Rows = append(table.Rows, row(RowInPlace, func(alg catalog.Algorithm) Cell {
			return flagCell(alg.InPlace)
		}))
	}
	return table
}

// complexityCell uses the first non-empty label.
func complexityCell(labels ...string) Cell {
	for _, label := range labels {
		if label != "" {
			return Cell{Text: label, Class: classify.Complexity(label)}
		}
	}
	return Cell{Text: NotAvailable}
}

func flagCell(value *bool) Cell {
	if value == nil {
		return Cell{Text: NotAvailable}
	}
	text := "いいえ"
	if *value {
		text = "はい"
	}
	flag := *value
	return Cell{Text: text, Flag: &flag}
}

func anyDefined(algs []catalog.Algorithm, get func(catalog.Algorithm) *bool) bool {
	for _, alg := range algs {
		if get(alg) != nil {
			return true
		}
	}
	return false
}

func categoryLabel(cat *catalog.Catalog, id catalog.CategoryID) string {
	if category, ok := cat.Category(id); ok && category.Name != "" {
		return category.Name
	}
	return classify.CategoryName(id)
}
