package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// listItemHeight is the rendered height of one list entry plus its gap.
const listItemHeight = 5

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	listRows       int
	sidebarInline  bool
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 20,
		listRows:       4,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.sidebarInline = innerWidth-sidebarWidth-4 >= 60
	l.viewportWidth = innerWidth
	if l.sidebarInline {
		l.viewportWidth = innerWidth - sidebarWidth - 4
	}

	const chrome = 12
	usable := height - chrome
	if usable < 6 {
		usable = 6
	}
	l.viewportHeight = usable
	if !l.sidebarInline {
		l.viewportHeight = usable / 2
		if l.viewportHeight < 6 {
			l.viewportHeight = 6
		}
	}

	l.listRows = (height - chrome) / listItemHeight
	if l.listRows < 1 {
		l.listRows = 1
	}
}

func (l pageLayout) windowWidthOr(fallback int) int {
	if l.windowWidth <= 0 {
		return fallback
	}
	return l.windowWidth
}

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (cb *contentBuilder) Line() int {
	return cb.lines
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// bullet wraps item under a " • " marker with continuation lines aligned.
func bullet(item string, width int) string {
	body := wordwrap.String(strings.TrimSpace(item), width-3)
	first, rest, found := strings.Cut(body, "\n")
	if !found {
		return " • " + first
	}
	return " • " + first + "\n" + indentMultiline(rest, "   ")
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}
