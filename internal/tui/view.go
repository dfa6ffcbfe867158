package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/algoscout/internal/nav"
)

func (m *model) View() string {
	var body string
	switch m.shell.Current() {
	case nav.List:
		body = m.viewList()
	case nav.Detail:
		body = m.viewDetail()
	case nav.Compare:
		body = m.viewCompare()
	default:
		body = m.viewHome()
	}
	return joinNonEmpty([]string{m.headerView(), body, m.statusView(), m.help.View(m.keys)})
}

func (m *model) headerView() string {
	items := []struct {
		label string
		view  nav.View
	}{
		{"ホーム", nav.Home},
		{"アルゴリズム一覧", nav.List},
		{"アルゴリズム比較", nav.Compare},
	}
	current := m.shell.Current()
	if current == nav.Detail {
		current = nav.List
	}
	cells := []string{titleStyle.Render(appTitle), "  "}
	for _, item := range items {
		if item.view == current {
			cells = append(cells, navActiveStyle.Render(item.label))
			continue
		}
		cells = append(cells, navStyle.Render(item.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *model) statusView() string {
	var parts []string
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	if badges := m.jobStatusBadges(); len(badges) > 0 {
		parts = append(parts, statusBarStyle.Render(strings.Join(badges, "  •  ")))
	}
	return strings.Join(parts, "\n")
}

func (m *model) jobStatusBadges() []string {
	var badges []string
	for _, kind := range []jobKind{jobKindCopy, jobKindExport} {
		snapshot, ok := m.jobStates[kind]
		if !ok || snapshot.Status != jobStatusRunning {
			continue
		}
		badges = append(badges, fmt.Sprintf("%s 実行中…", kind))
	}
	return badges
}

var homeFeatures = []struct {
	title string
	body  string
}{
	{"実践的なC言語実装", "実際に動作するC言語のコードで、アルゴリズムの動作を詳しく学習できます。"},
	{"計算量の詳細解説", "時間計算量と空間計算量を分析し、アルゴリズムの効率性を理解できます。"},
	{"ステップバイステップ", "アルゴリズムの動作過程を段階的に追跡し、理解を深めることができます。"},
	{"豊富な解説", "初心者にも分かりやすい詳細な解説と実用的な応用例を提供します。"},
	{"学習者向け設計", "プログラミング初心者から上級者まで、段階的に学習できる構成です。"},
	{"実用的な応用", "実際のプログラミングで使える知識と技術を身につけることができます。"},
}

func (m *model) viewHome() string {
	width := m.layout.windowWidthOr(100) - viewportHorizontalPadding
	hero := heroBoxStyle.Render(joinNonEmpty([]string{
		heroTitleStyle.Render("C言語で学ぶ"),
		wordwrap.String("ソートから探索、データ構造まで。実践的なC言語のコード例と詳細な解説で、アルゴリズムの本質を理解し、プログラミングスキルを向上させましょう。", 56),
		keyStyle.Render("enter") + keyDescStyle.Render(" アルゴリズムを学ぶ"),
	}))
	top := lipgloss.JoinVertical(lipgloss.Left, renderLogo(), taglineStyle.Render(heroTagline))

	features := []string{sectionHeaderStyle.Render("なぜこのサイトで学ぶのか")}
	for _, feature := range homeFeatures {
		features = append(features, " • "+keyDescStyle.Render(feature.title)+helperStyle.Render("  "+feature.body))
	}

	return joinNonEmpty([]string{
		top,
		hero,
		sectionHeaderStyle.Render("学習できるアルゴリズム"),
		m.categoryCards(width),
		strings.Join(features, "\n"),
	})
}

// categoryCards lays the cards out in as many columns as fit width.
func (m *model) categoryCards(width int) string {
	const cardWidth = 34
	var cards []string
	for _, category := range m.catalog.Categories() {
		lines := []string{
			sectionHeaderStyle.Render(category.Name),
			helperStyle.Render(wordwrap.String(category.Description, cardWidth-4)),
		}
		shown := category.Algorithms
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for _, id := range shown {
			lines = append(lines, " • "+titleCase(id))
		}
		if extra := len(category.Algorithms) - len(shown); extra > 0 {
			lines = append(lines, helperStyle.Render(fmt.Sprintf("   他 %d 個...", extra)))
		}
		cards = append(cards, cardStyle.Width(cardWidth).Render(strings.Join(lines, "\n")))
	}
	perRow := width / (cardWidth + 2)
	if perRow < 1 {
		perRow = 1
	}
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return strings.Join(rows, "\n")
}

// titleCase turns "bubble-sort" into "Bubble Sort".
func titleCase(id string) string {
	words := strings.Split(id, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func renderLogo() string {
	if len(logoArtLines) == 0 {
		return ""
	}
	width := 0
	lineRunes := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		runes := []rune(line)
		lineRunes[i] = runes
		if len(runes) > width {
			width = len(runes)
		}
	}
	width += 1
	height := len(logoArtLines) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}

	// shadow first, then the face on top of it
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			if y+1 < height && x+1 < width {
				grid[y+1][x+1] = cell{r: r, style: logoShadowStyle}
			}
		}
	}
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			grid[y][x] = cell{r: r, style: logoFaceStyle}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}
