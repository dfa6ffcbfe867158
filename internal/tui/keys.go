package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Home      key.Binding
	List      key.Binding
	Compare   key.Binding
	Help      key.Binding
	Quit      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Open      key.Binding
	Back      key.Binding
	Search    key.Binding
	NextCat   key.Binding
	PrevCat   key.Binding
	Reset     key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	JumpTab   key.Binding
	Copy      key.Binding
	Picker    key.Binding
	Remove    key.Binding
	Export    key.Binding
	viewHints []key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Home:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "ホーム")),
		List:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "一覧")),
		Compare: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "比較")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ヘルプ")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "終了")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "上へ")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "下へ")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "前の列")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "次の列")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "開く")),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "一覧に戻る")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "検索")),
		NextCat: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "次のカテゴリ")),
		PrevCat: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "前のカテゴリ")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "フィルターをリセット")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "次のタブ")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "前のタブ")),
		JumpTab: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "タブ選択")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "コードをコピー")),
		Picker:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "追加")),
		Remove:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "削除")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "エクスポート")),
	}
}

// ShortHelp shows the bindings of the active view followed by the globals.
func (k keyMap) ShortHelp() []key.Binding {
	out := append([]key.Binding(nil), k.viewHints...)
	return append(out, k.Help, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.viewHints,
		{k.Home, k.List, k.Compare},
		{k.Help, k.Quit},
	}
}
