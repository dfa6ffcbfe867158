package tui

import "github.com/csheth/algoscout/internal/compare"

const heroTagline = "C言語で学ぶ、アルゴリズムとデータ構造。"

const appTitle = "C言語アルゴリズム学習"

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	sidebarWidth              = 30
	compareColumnWidth        = 18
	compareLabelWidth         = 16
)

const (
	searchPlaceholder = "アルゴリズム名や説明で検索..."
	allCategoriesText = "全てのカテゴリ"
)

type copyResultMsg struct {
	epoch int
	id    string
	err   error
}

type copiedExpiredMsg struct {
	epoch int
	token int
}

type exportResultMsg struct {
	path  string
	table compare.Table
	err   error
}
