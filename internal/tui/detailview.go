package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/algoscout/internal/catalog"
	"github.com/csheth/algoscout/internal/classify"
	"github.com/csheth/algoscout/internal/detail"
	"github.com/csheth/algoscout/internal/nav"
)

func (m *model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.backToList()
		return m, nil
	}
	if m.page == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(func() { m.detailState.ShiftTab(1) })
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(func() { m.detailState.ShiftTab(-1) })
		return m, nil
	case key.Matches(msg, m.keys.JumpTab):
		tab := detail.Tab(msg.Runes[0] - '1')
		m.switchTab(func() { m.detailState.SelectTab(tab) })
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		code := m.page.Content.CodeImplementation
		return m, m.jobs.Start(jobKindCopy, copyCodeJob(m.config.Clipboard, m.epoch, m.page.Algorithm.ID, code))
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) switchTab(change func()) {
	before := m.detailState.Tab()
	change()
	if m.detailState.Tab() == before {
		return
	}
	m.refreshDetailContent()
	m.viewport.GotoTop()
}

// handleCopyResult shows the copied marker on success. Failures are logged
// and otherwise leave the screen untouched.
func (m *model) handleCopyResult(msg copyResultMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Warn("clipboard write failed", slog.String("id", msg.id), slog.Any("err", msg.err))
		return nil
	}
	if msg.epoch != m.epoch || m.shell.Current() != nav.Detail {
		return nil
	}
	token := m.detailState.MarkCopied()
	m.refreshDetailContent()
	return expireCopiedCmd(m.epoch, token)
}

func (m *model) refreshDetailContent() {
	if m.page == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.buildDetailContent())
}

func (m *model) buildDetailContent() string {
	cb := &contentBuilder{}
	tab := m.detailState.Tab()
	wrap := m.wrapWidth(4)
	for idx, section := range m.page.Sections(tab) {
		if idx > 0 {
			cb.WriteRune('\n')
		}
		heading := sectionHeaderStyle.Render(section.Heading)
		if section.Code {
			heading += "  " + m.copyBadge()
		}
		cb.WriteString(heading)
		cb.WriteRune('\n')
		switch {
		case section.Code:
			cb.WriteString(codeStyle.Render(strings.TrimRight(section.Body, "\n")))
			cb.WriteRune('\n')
		case len(section.Items) > 0:
			for _, item := range section.Items {
				cb.WriteString(bullet(item, wrap))
				cb.WriteRune('\n')
			}
		default:
			cb.WriteString(wordwrap.String(strings.TrimSpace(section.Body), wrap))
			cb.WriteRune('\n')
		}
	}
	return cb.String()
}

func (m *model) copyBadge() string {
	if m.detailState.Copied() {
		return successStyle.Render("✓ コピー済み")
	}
	return keyStyle.Render("y") + keyDescStyle.Render(" コピー")
}

func (m *model) viewDetail() string {
	if m.page == nil {
		return cardStyle.Render(joinNonEmpty([]string{
			sectionHeaderStyle.Render("アルゴリズムが見つかりません"),
			keyStyle.Render("esc") + keyDescStyle.Render(" 一覧に戻る"),
		}))
	}
	alg := m.page.Algorithm
	header := joinNonEmpty([]string{
		helperStyle.Render("← 一覧に戻る (esc)"),
		heroTitleStyle.Render(m.page.Title()) + "  " +
			badgeStyle(classify.CategoryTone(alg.Category)).Render(classify.CategoryName(alg.Category)),
		helperStyle.Render(wordwrap.String(alg.Description, m.layout.windowWidthOr(80)-4)),
	})

	body := lipgloss.JoinVertical(lipgloss.Left, m.tabBar(), m.viewport.View())
	sidebar := sidebarStyle.Width(sidebarWidth).Render(renderFacts(alg))
	if m.layout.sidebarInline {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", sidebar)
	} else {
		body = joinNonEmpty([]string{sidebar, body})
	}
	return joinNonEmpty([]string{header, body})
}

func (m *model) tabBar() string {
	active := m.detailState.Tab()
	cells := make([]string, 0, len(detail.Tabs))
	for _, tab := range detail.Tabs {
		if tab == active {
			cells = append(cells, tabActiveStyle.Render(tab.Label()))
			continue
		}
		cells = append(cells, tabStyle.Render(tab.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderFacts(alg catalog.Algorithm) string {
	lines := []string{sectionHeaderStyle.Render("時間計算量")}
	for _, entry := range alg.TimeComplexity.Entries() {
		lines = append(lines, helperStyle.Render(timeKeyLabel(entry.Key)+": ")+complexityStyle(entry.Label).Render(entry.Label))
	}
	lines = append(lines, "", sectionHeaderStyle.Render("空間計算量"), complexityStyle(alg.SpaceComplexity).Render(alg.SpaceComplexity))
	if alg.Stable != nil || alg.InPlace != nil {
		lines = append(lines, "", sectionHeaderStyle.Render("特性"))
		if alg.Stable != nil {
			if *alg.Stable {
				lines = append(lines, toneStyle(classify.ToneGreen).Render("✓ 安定ソート"))
			} else {
				lines = append(lines, toneStyle(classify.ToneRed).Render("✗ 不安定ソート"))
			}
		}
		if alg.InPlace != nil {
			if *alg.InPlace {
				lines = append(lines, toneStyle(classify.ToneGreen).Render("✓ インプレース"))
			} else {
				lines = append(lines, toneStyle(classify.ToneRed).Render("✗ 追加メモリ必要"))
			}
		}
	}
	return strings.Join(lines, "\n")
}

var timeKeyLabels = map[string]string{
	"best":      "最良",
	"average":   "平均",
	"worst":     "最悪",
	"access":    "アクセス",
	"search":    "検索",
	"insertion": "挿入",
	"deletion":  "削除",
}

func timeKeyLabel(name string) string {
	if label, ok := timeKeyLabels[name]; ok {
		return label
	}
	return name
}
