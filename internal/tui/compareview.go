package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/csheth/algoscout/internal/catalog"
	"github.com/csheth/algoscout/internal/classify"
	"github.com/csheth/algoscout/internal/compare"
)

func (m *model) available() []catalog.Algorithm {
	return m.selection.Available(m.catalog.Algorithms())
}

func (m *model) handleCompareKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	defer m.refreshKeyHints()
	if m.selection.SelectorOpen() {
		return m.handlePickerKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Picker):
		m.selection.ToggleSelector()
		m.pickerCursor = 0
	case key.Matches(msg, m.keys.Left):
		if m.columnFocus > 0 {
			m.columnFocus--
		}
	case key.Matches(msg, m.keys.Right):
		if m.columnFocus < m.selection.Len()-1 {
			m.columnFocus++
		}
	case key.Matches(msg, m.keys.Remove):
		ids := m.selection.IDs()
		if m.columnFocus < len(ids) {
			m.selection.Remove(ids[m.columnFocus])
			m.clampColumnFocus()
		}
	case key.Matches(msg, m.keys.Export):
		return m, m.startExport()
	}
	return m, nil
}

func (m *model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.available()
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Picker):
		m.selection.CloseSelector()
	case key.Matches(msg, m.keys.Up):
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.pickerCursor < len(options)-1 {
			m.pickerCursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.pickerCursor < len(options) {
			if m.selection.Add(options[m.pickerCursor].ID) {
				m.columnFocus = m.selection.Len() - 1
			}
		}
		m.pickerCursor = 0
	}
	return m, nil
}

func (m *model) clampColumnFocus() {
	if m.columnFocus >= m.selection.Len() {
		m.columnFocus = m.selection.Len() - 1
	}
	if m.columnFocus < 0 {
		m.columnFocus = 0
	}
}

func (m *model) startExport() tea.Cmd {
	if m.selection.Empty() {
		m.infoMessage = "比較するアルゴリズムがありません"
		return nil
	}
	if m.config.ExportPath == "" {
		m.errorMessage = "エクスポート先が設定されていません"
		return nil
	}
	table := compare.BuildTable(m.catalog, m.selection.IDs())
	m.infoMessage = "比較表を保存しています…"
	return m.jobs.Start(jobKindExport, exportTableJob(m.config.ExportPath, table))
}

func (m *model) viewCompare() string {
	parts := []string{
		heroTitleStyle.Render("アルゴリズム比較"),
		helperStyle.Render(fmt.Sprintf("最大%dつのアルゴリズムを選択して、性能や特性を比較できます。(%d/%d)",
			compare.MaxSelected, m.selection.Len(), compare.MaxSelected)),
	}
	if !m.selection.Full() {
		parts = append(parts, keyStyle.Render("a")+keyDescStyle.Render(" アルゴリズムを追加"))
	}
	if m.selection.SelectorOpen() {
		parts = append(parts, m.pickerView())
	}
	if m.selection.Empty() {
		parts = append(parts, cardStyle.Render(joinNonEmpty([]string{
			sectionHeaderStyle.Render("アルゴリズムを選択してください"),
			helperStyle.Render("比較したいアルゴリズムを追加して、性能や特性を比較できます。"),
		})))
		return joinNonEmpty(parts)
	}
	parts = append(parts, renderTable(compare.BuildTable(m.catalog, m.selection.IDs()), m.columnFocus))
	return joinNonEmpty(parts)
}

func (m *model) pickerView() string {
	lines := []string{sectionHeaderStyle.Render("アルゴリズムを選択")}
	for idx, alg := range m.available() {
		badge := badgeStyle(classify.CategoryTone(alg.Category)).Render(classify.CategoryName(alg.Category))
		label := "  " + alg.Name
		if idx == m.pickerCursor {
			label = currentLineStyle.Render("▸ " + alg.Name)
		}
		lines = append(lines, label+" "+badge)
	}
	return pickerBoxStyle.Render(strings.Join(lines, "\n"))
}

// renderTable draws the pivot with fixed column widths. The focused column
// header is highlighted as the removal target.
func renderTable(table compare.Table, focus int) string {
	labelCell := lipgloss.NewStyle().Width(compareLabelWidth)
	cell := lipgloss.NewStyle().Width(compareColumnWidth)
	fit := func(text string, width int) string {
		return truncate.StringWithTail(text, uint(width-1), "…")
	}

	header := []string{labelCell.Render(tableHeaderStyle.Render("項目"))}
	for idx, col := range table.Columns {
		name := fit(col.Name, compareColumnWidth)
		if idx == focus {
			header = append(header, cell.Render(tableFocusStyle.Render(name)))
			continue
		}
		header = append(header, cell.Render(tableHeaderStyle.Render(name)))
	}
	width := compareLabelWidth + compareColumnWidth*len(table.Columns)
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, header...),
		helperStyle.Render(strings.Repeat("─", width)),
	}
	for _, row := range table.Rows {
		cells := []string{labelCell.Render(helperStyle.Render(fit(row.Label, compareLabelWidth)))}
		for _, c := range row.Cells {
			cells = append(cells, cell.Render(renderCell(row.Key, c)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

func renderCell(rowKey compare.RowKey, c compare.Cell) string {
	text := truncate.StringWithTail(c.Text, uint(compareColumnWidth-1), "…")
	switch {
	case c.Flag != nil && *c.Flag:
		return toneStyle(classify.ToneGreen).Render("✓ " + text)
	case c.Flag != nil:
		return toneStyle(classify.ToneRed).Render("✗ " + text)
	case c.Class != "":
		return toneStyle(c.Class.Tone()).Bold(true).Render(text)
	case rowKey == compare.RowCategory:
		return keyDescStyle.Render(text)
	default:
		return helperStyle.Render(text)
	}
}
