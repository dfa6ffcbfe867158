package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/algoscout/internal/classify"
)

var (
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	successStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a3be8c"))

	heroAccentColor        = lipgloss.Color("#ff8c00")
	heroEmberColor         = lipgloss.Color("#2b1400")
	heroTextColor          = lipgloss.Color("#fff4d0")
	heroSecondaryTextColor = lipgloss.Color("#ffb347")

	heroTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	heroBoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(heroAccentColor).Foreground(heroTextColor).Padding(0, 2)
	taglineStyle       = lipgloss.NewStyle().Foreground(heroSecondaryTextColor).Italic(true)
	navStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4")).Padding(0, 1)
	navActiveStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(heroSecondaryTextColor).Padding(0, 1)
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	cardStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	sidebarStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	currentLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6"))
	tabStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 2)
	tabActiveStyle     = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor).Underline(true).Padding(0, 2)
	codeStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4")).Background(lipgloss.Color("#1e1e2e")).Padding(0, 1)
	pickerBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(heroAccentColor).Padding(0, 1)
	tableHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0def4"))
	tableFocusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166"))
	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor).Background(heroEmberColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#110600"))
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		" █████╗   ██╗        ██████╗    ██████╗   ███████╗   ██████╗   ██████╗   ██╗   ██╗  ████████╗  ",
		"██╔══██╗  ██║       ██╔════╝   ██╔═══██╗  ██╔════╝  ██╔════╝  ██╔═══██╗  ██║   ██║  ╚══██╔══╝  ",
		"███████║  ██║       ██║  ███╗  ██║   ██║  ███████╗  ██║       ██║   ██║  ██║   ██║     ██║     ",
		"██╔══██║  ██║       ██║   ██║  ██║   ██║  ╚════██║  ██║       ██║   ██║  ██║   ██║     ██║     ",
		"██║  ██║  ███████╗  ╚██████╔╝  ╚██████╔╝  ███████║  ╚██████╗  ╚██████╔╝  ╚██████╔╝     ██║     ",
		"╚═╝  ╚═╝  ╚══════╝   ╚═════╝    ╚═════╝   ╚══════╝   ╚═════╝   ╚═════╝    ╚═════╝      ╚═╝     ",
	}
)

var toneColors = map[classify.Tone]lipgloss.Color{
	classify.ToneGreen:  lipgloss.Color("#a3be8c"),
	classify.ToneBlue:   lipgloss.Color("#81a1c1"),
	classify.ToneRed:    lipgloss.Color("#bf616a"),
	classify.ToneYellow: lipgloss.Color("#ebcb8b"),
	classify.TonePurple: lipgloss.Color("#b48ead"),
	classify.ToneOrange: lipgloss.Color("#d08770"),
	classify.ToneGray:   lipgloss.Color("244"),
}

func toneStyle(tone classify.Tone) lipgloss.Style {
	color, ok := toneColors[tone]
	if !ok {
		color = toneColors[classify.ToneGray]
	}
	return lipgloss.NewStyle().Foreground(color)
}

func complexityStyle(label string) lipgloss.Style {
	return toneStyle(classify.Complexity(label).Tone()).Bold(true)
}

func badgeStyle(tone classify.Tone) lipgloss.Style {
	color, ok := toneColors[tone]
	if !ok {
		color = toneColors[classify.ToneGray]
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(color).Padding(0, 1)
}
