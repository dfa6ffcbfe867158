package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/csheth/algoscout/internal/catalog"
	"github.com/csheth/algoscout/internal/classify"
)

func (m *model) filtered() []catalog.Algorithm {
	return m.listState.Apply(m.catalog.Algorithms())
}

func (m *model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Up):
		m.moveListCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveListCursor(1)
	case key.Matches(msg, m.keys.NextCat):
		m.listState.CycleCategory(m.catalog.Categories(), 1)
		m.listCursor = 0
	case key.Matches(msg, m.keys.PrevCat):
		m.listState.CycleCategory(m.catalog.Categories(), -1)
		m.listCursor = 0
	case key.Matches(msg, m.keys.Reset):
		m.resetFilters()
	case key.Matches(msg, m.keys.Open):
		results := m.filtered()
		if m.listCursor < len(results) {
			m.selectAlgorithm(results[m.listCursor].ID)
		}
	}
	return m, nil
}

// handleSearchKey feeds the focused search box. The result list is
// recomputed on every keystroke.
func (m *model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.search.Blur()
		return m, nil
	case tea.KeyUp:
		m.moveListCursor(-1)
		return m, nil
	case tea.KeyDown:
		m.moveListCursor(1)
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if term := m.search.Value(); term != m.listState.SearchTerm {
		m.listState.SearchTerm = term
		m.listCursor = 0
	}
	return m, cmd
}

func (m *model) resetFilters() {
	m.listState.Reset()
	m.search.SetValue("")
	m.listCursor = 0
}

func (m *model) moveListCursor(delta int) {
	count := len(m.filtered())
	if count == 0 {
		m.listCursor = 0
		return
	}
	next := m.listCursor + delta
	if next < 0 {
		next = 0
	}
	if next >= count {
		next = count - 1
	}
	m.listCursor = next
}

func (m *model) categoryFilterLabel() string {
	if m.listState.Category == catalog.AllCategories || m.listState.Category == "" {
		return allCategoriesText
	}
	if cat, ok := m.catalog.Category(m.listState.Category); ok {
		return cat.Name
	}
	return string(m.listState.Category)
}

func (m *model) viewList() string {
	results := m.filtered()
	var b strings.Builder
	b.WriteString(heroTitleStyle.Render("アルゴリズム一覧"))
	b.WriteRune('\n')
	b.WriteString(m.search.View())
	b.WriteRune('\n')
	b.WriteString(helperStyle.Render("カテゴリ: ") + keyDescStyle.Render("‹ "+m.categoryFilterLabel()+" ›"))

	if len(results) == 0 {
		empty := joinNonEmpty([]string{
			sectionHeaderStyle.Render("アルゴリズムが見つかりません"),
			helperStyle.Render("検索条件を変更して再度お試しください"),
			keyStyle.Render("r") + keyDescStyle.Render(" フィルターをリセット"),
		})
		return joinNonEmpty([]string{b.String(), cardStyle.Render(empty)})
	}

	count := helperStyle.Render(fmt.Sprintf("%d 個のアルゴリズムが見つかりました", len(results)))
	rows := m.layout.listRows
	start := 0
	if m.listCursor >= rows {
		start = m.listCursor - rows + 1
	}
	end := start + rows
	if end > len(results) {
		end = len(results)
	}
	items := make([]string, 0, end-start)
	for idx := start; idx < end; idx++ {
		items = append(items, m.renderListItem(results[idx], idx == m.listCursor))
	}
	body := strings.Join(items, "\n\n")
	if end < len(results) || start > 0 {
		body += "\n" + helperStyle.Render(fmt.Sprintf("%d–%d / %d", start+1, end, len(results)))
	}
	return joinNonEmpty([]string{b.String(), count, body})
}

func (m *model) renderListItem(alg catalog.Algorithm, current bool) string {
	width := m.wrapWidth(6)
	marker := "  "
	name := sectionHeaderStyle.Render(alg.Name)
	if current {
		marker = "▸ "
		name = currentLineStyle.Render(alg.Name)
	}
	badge := badgeStyle(classify.CategoryTone(alg.Category)).Render(classify.CategoryName(alg.Category))
	lines := []string{
		marker + name + " " + badge,
		"  " + helperStyle.Render(truncate.StringWithTail(alg.Description, uint(width), "…")),
	}

	var facts []string
	for _, entry := range []struct{ label, value string }{
		{"最良", alg.TimeComplexity.Best},
		{"平均", alg.TimeComplexity.Average},
		{"最悪", alg.TimeComplexity.Worst},
	} {
		if entry.value == "" {
			continue
		}
		facts = append(facts, entry.label+": "+complexityStyle(entry.value).Render(entry.value))
	}
	facts = append(facts, "空間: "+complexityStyle(alg.SpaceComplexity).Render(alg.SpaceComplexity))
	lines = append(lines, "  "+strings.Join(facts, "  "))

	if traits := traitBadges(alg); traits != "" {
		lines = append(lines, "  "+helperStyle.Render("特性: ")+traits)
	}
	return strings.Join(lines, "\n")
}

func traitBadges(alg catalog.Algorithm) string {
	var out []string
	mark := func(v *bool, label string) {
		if v == nil {
			return
		}
		if *v {
			out = append(out, toneStyle(classify.ToneGreen).Render("✓ "+label))
		} else {
			out = append(out, toneStyle(classify.ToneRed).Render("✗ "+label))
		}
	}
	mark(alg.Stable, "安定ソート")
	mark(alg.InPlace, "インプレース")
	return strings.Join(out, "  ")
}
