package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/algoscout/internal/compare"
	"github.com/csheth/algoscout/internal/detail"
	"github.com/csheth/algoscout/internal/export"
	"github.com/csheth/algoscout/internal/nav"
)

type fakeClipboard struct {
	writes []string
	err    error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

func newTestModel(t *testing.T) *model {
	t.Helper()
	return newTestModelWith(t, Config{})
}

func newTestModelWith(t *testing.T, config Config) *model {
	t.Helper()
	if config.Clipboard == nil {
		config.Clipboard = (&fakeClipboard{}).WriteAll
	}
	if config.ExportPath == "" {
		config.ExportPath = filepath.Join(t.TempDir(), "comparisons.json")
	}
	teaModel, ok := New(config).(*model)
	if !ok {
		t.Fatalf("expected *model, got %T", teaModel)
	}
	return teaModel
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *model, keys ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func filteredIDs(m *model) []string {
	var ids []string
	for _, alg := range m.filtered() {
		ids = append(ids, alg.ID)
	}
	return ids
}

func TestStartsOnHome(t *testing.T) {
	m := newTestModel(t)
	if m.shell.Current() != nav.Home {
		t.Fatalf("initial view = %s", m.shell.Current())
	}
	view := m.View()
	for _, want := range []string{"C言語で学ぶ", "アルゴリズムを学ぶ", "Bubble Sort", "他 3 個..."} {
		if !strings.Contains(view, want) {
			t.Fatalf("home view missing %q", want)
		}
	}
}

func TestHomeEnterOpensList(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.shell.Current() != nav.List {
		t.Fatalf("enter on home should open list, got %s", m.shell.Current())
	}
	if !strings.Contains(m.View(), "15 個のアルゴリズムが見つかりました") {
		t.Fatal("list should start unfiltered")
	}
}

func TestListSearchFiltersOnEveryKeystroke(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("l"), runes("/"))
	if !m.search.Focused() {
		t.Fatal("slash should focus the search box")
	}
	press(t, m, runes("ソート"))

	want := []string{"bubble-sort", "selection-sort", "insertion-sort", "quick-sort", "merge-sort", "heap-sort"}
	got := filteredIDs(m)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("filtered = %v, want %v", got, want)
	}
	if !strings.Contains(m.View(), "6 個のアルゴリズムが見つかりました") {
		t.Fatal("result count not rendered")
	}
}

func TestSearchFocusSuppressesGlobalKeys(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("l"), runes("/"))
	press(t, m, runes("q"), runes("h"))
	if m.shell.Current() != nav.List {
		t.Fatalf("h should not navigate while typing, got %s", m.shell.Current())
	}
	if m.search.Value() != "qh" {
		t.Fatalf("search value = %q", m.search.Value())
	}
}

func TestListNoResultsAndReset(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("l"), tea.KeyMsg{Type: tea.KeyTab}, runes("/"), runes("zzz"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.search.Focused() {
		t.Fatal("esc should leave the search box")
	}
	view := m.View()
	if !strings.Contains(view, "アルゴリズムが見つかりません") || !strings.Contains(view, "フィルターをリセット") {
		t.Fatalf("missing no-results panel:\n%s", view)
	}

	press(t, m, runes("r"))
	if len(m.filtered()) != 15 {
		t.Fatalf("reset should restore the full list, got %d", len(m.filtered()))
	}
	if m.search.Value() != "" {
		t.Fatalf("reset should clear the search box, got %q", m.search.Value())
	}
	if !strings.Contains(m.View(), allCategoriesText) {
		t.Fatal("reset should clear the category filter")
	}
}

func TestListCategoryCycle(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("l"), tea.KeyMsg{Type: tea.KeyTab})
	if got := len(m.filtered()); got != 6 {
		t.Fatalf("first category should be sorting with 6 entries, got %d", got)
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	for _, alg := range m.filtered() {
		if alg.Category != "graph-algorithms" {
			t.Fatalf("wrap backwards should land on the last category, got %s", alg.Category)
		}
	}
}

func TestListEnterOpensDetail(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("l"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	id, ok := m.shell.SelectedID()
	if !ok || id != "selection-sort" {
		t.Fatalf("selected = %q, %v", id, ok)
	}
	if m.page == nil || m.page.Title() != "選択ソート (Selection Sort)" {
		t.Fatalf("page not resolved: %+v", m.page)
	}
}

func TestDetailNotFoundOffersOnlyBack(t *testing.T) {
	for _, id := range []string{"heap-sort", "foo"} {
		t.Run(id, func(t *testing.T) {
			m := newTestModelWith(t, Config{StartView: nav.Detail, StartAlgorithm: id})
			if m.page != nil {
				t.Fatalf("expected fallback, got page %+v", m.page)
			}
			view := m.View()
			if !strings.Contains(view, "アルゴリズムが見つかりません") || !strings.Contains(view, "一覧に戻る") {
				t.Fatalf("fallback not rendered:\n%s", view)
			}
			if strings.Contains(view, "概要") {
				t.Fatal("fallback must not render tabs")
			}
			if cmd := press(t, m, runes("y")); cmd != nil {
				t.Fatal("copy should be unavailable on the fallback")
			}
			press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
			if m.shell.Current() != nav.List {
				t.Fatalf("esc should go back to list, got %s", m.shell.Current())
			}
		})
	}
}

func TestDetailTabs(t *testing.T) {
	m := newTestModelWith(t, Config{StartView: nav.Detail, StartAlgorithm: "bubble-sort"})
	if m.detailState.Tab() != detail.TabOverview {
		t.Fatalf("default tab = %s", m.detailState.Tab())
	}
	if !strings.Contains(m.buildDetailContent(), "アルゴリズムの手順") {
		t.Fatal("overview content missing")
	}

	press(t, m, runes("2"))
	if m.detailState.Tab() != detail.TabImplementation {
		t.Fatalf("2 should select implementation, got %s", m.detailState.Tab())
	}
	content := m.buildDetailContent()
	if !strings.Contains(content, "C言語実装") || !strings.Contains(content, "#include <stdio.h>") {
		t.Fatalf("implementation content missing:\n%s", content)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	if m.detailState.Tab() != detail.TabUsage {
		t.Fatalf("tab twice from implementation = %s", m.detailState.Tab())
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.detailState.Tab() != detail.TabOverview {
		t.Fatalf("tab should wrap, got %s", m.detailState.Tab())
	}
}

func TestCopyShowsIndicatorUntilItsTimerFires(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModelWith(t, Config{StartView: nav.Detail, StartAlgorithm: "quick-sort", Clipboard: clip.WriteAll})

	if cmd := press(t, m, runes("y")); cmd == nil {
		t.Fatal("y should start a copy job")
	}

	msg, err := copyCodeJob(m.config.Clipboard, m.epoch, "quick-sort", m.page.Content.CodeImplementation)(context.Background())
	if err != nil {
		t.Fatalf("copy job: %v", err)
	}
	if len(clip.writes) != 1 || clip.writes[0] != m.page.Content.CodeImplementation {
		t.Fatalf("clipboard got %q", clip.writes)
	}

	_, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("successful copy should schedule expiry")
	}
	if !m.detailState.Copied() {
		t.Fatal("indicator should show after copy")
	}
	_, _ = m.Update(copyResultMsg{epoch: m.epoch, id: "quick-sort"})

	m.Update(copiedExpiredMsg{epoch: m.epoch, token: 1})
	if !m.detailState.Copied() {
		t.Fatal("first timer must not clear the second copy")
	}
	m.Update(copiedExpiredMsg{epoch: m.epoch, token: 2})
	if m.detailState.Copied() {
		t.Fatal("indicator should clear after its own timer")
	}
}

func TestCopyFailureLeavesIndicatorUnchanged(t *testing.T) {
	m := newTestModelWith(t, Config{StartView: nav.Detail, StartAlgorithm: "quick-sort"})
	_, cmd := m.Update(copyResultMsg{epoch: m.epoch, id: "quick-sort", err: errors.New("no clipboard")})
	if cmd != nil {
		t.Fatal("failed copy should not schedule anything")
	}
	if m.detailState.Copied() {
		t.Fatal("indicator should stay hidden")
	}
	if m.errorMessage != "" {
		t.Fatalf("clipboard failure should not surface an error, got %q", m.errorMessage)
	}
}

func TestLateCopyResultIgnoredAfterNavigation(t *testing.T) {
	m := newTestModelWith(t, Config{StartView: nav.Detail, StartAlgorithm: "quick-sort"})
	stale := m.epoch
	press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyEnter})
	if _, cmd := m.Update(copyResultMsg{epoch: stale, id: "quick-sort"}); cmd != nil {
		t.Fatal("stale copy result should be dropped")
	}
	if m.detailState.Copied() {
		t.Fatal("stale copy result should not mark the new page")
	}
}

func TestJobEnvelopeForwardsPayload(t *testing.T) {
	m := newTestModelWith(t, Config{StartView: nav.Detail, StartAlgorithm: "stack"})
	m.Update(jobSignalMsg{Snapshot: jobSnapshot{Kind: jobKindCopy, Status: jobStatusRunning}})
	if !strings.Contains(m.statusView(), "copy 実行中") {
		t.Fatal("running job badge missing")
	}
	m.Update(jobResultEnvelope{
		Snapshot: jobSnapshot{Kind: jobKindCopy, Status: jobStatusSucceeded},
		Payload:  copyResultMsg{epoch: m.epoch, id: "stack"},
	})
	if !m.detailState.Copied() {
		t.Fatal("envelope payload was not handled")
	}
	if strings.Contains(m.statusView(), "実行中") {
		t.Fatal("badge should disappear once the job finishes")
	}
}

func TestCompareAddCapsAtFour(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("c"))
	if !strings.Contains(m.View(), "アルゴリズムを選択してください") {
		t.Fatal("empty compare prompt missing")
	}

	for i := 0; i < compare.MaxSelected; i++ {
		press(t, m, runes("a"))
		if !m.selection.SelectorOpen() {
			t.Fatalf("picker should open on round %d", i)
		}
		press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		if m.selection.SelectorOpen() {
			t.Fatal("adding should close the picker")
		}
	}
	want := []string{"bubble-sort", "selection-sort", "insertion-sort", "quick-sort"}
	if got := m.selection.IDs(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("selection = %v", got)
	}

	press(t, m, runes("a"))
	if m.selection.SelectorOpen() || m.selection.Len() != 4 {
		t.Fatalf("full selection should not open the picker (len=%d)", m.selection.Len())
	}
	if strings.Contains(m.View(), "アルゴリズムを追加") {
		t.Fatal("add affordance should be hidden at four")
	}
}

func TestCompareRemoveFocusedColumn(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("c"))
	for _, id := range []string{"bubble-sort", "depth-first-search", "stack"} {
		m.selection.Add(id)
	}
	m.columnFocus = 2

	press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, runes("x"))
	if got := m.selection.IDs(); strings.Join(got, ",") != "bubble-sort,stack" {
		t.Fatalf("selection after remove = %v", got)
	}
	if m.columnFocus != 1 {
		t.Fatalf("focus = %d", m.columnFocus)
	}

	view := m.View()
	for _, want := range []string{"安定ソート", "N/A", "はい", "カテゴリー"} {
		if !strings.Contains(view, want) {
			t.Fatalf("table missing %q:\n%s", want, view)
		}
	}
}

func TestCompareExport(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("c"))
	if cmd := press(t, m, runes("e")); cmd != nil {
		t.Fatal("export with nothing selected should not start a job")
	}
	m.selection.Add("merge-sort")
	m.selection.Add("binary-search")
	if cmd := press(t, m, runes("e")); cmd == nil {
		t.Fatal("export should start a job")
	}

	table := compare.BuildTable(m.catalog, m.selection.IDs())
	msg, err := exportTableJob(m.config.ExportPath, table)(context.Background())
	if err != nil {
		t.Fatalf("export job: %v", err)
	}
	m.Update(msg)
	if !strings.Contains(m.infoMessage, m.config.ExportPath) {
		t.Fatalf("info message = %q", m.infoMessage)
	}
	saved, err := export.Load(m.config.ExportPath)
	if err != nil {
		t.Fatalf("load export: %v", err)
	}
	if len(saved) != 1 || strings.Join(saved[0].IDs, ",") != "merge-sort,binary-search" {
		t.Fatalf("saved = %+v", saved)
	}
}

func TestExportFailureSurfacesError(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("c"))
	m.Update(exportResultMsg{path: "/nope", err: errors.New("read-only")})
	if !strings.Contains(m.errorMessage, "read-only") {
		t.Fatalf("error message = %q", m.errorMessage)
	}
}

func TestNavigationResetsViewState(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("c"))
	m.selection.Add("queue")

	press(t, m, runes("c"))
	if m.selection.Len() != 1 {
		t.Fatal("re-selecting the active view should keep its state")
	}

	press(t, m, runes("h"), runes("c"))
	if !m.selection.Empty() {
		t.Fatalf("compare state should reset after leaving, got %v", m.selection.IDs())
	}
}

func TestHelpToggleAndQuit(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Fatal("? should expand help")
	}
	press(t, m, runes("?"))
	if m.help.ShowAll {
		t.Fatal("? should collapse help again")
	}

	cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should return tea.Quit")
	}
}

func TestWindowResizeSizesViewport(t *testing.T) {
	m := newTestModelWith(t, Config{StartView: nav.Detail, StartAlgorithm: "hash-table"})
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	if m.viewport.Width != 162 || m.viewport.Height != 28 {
		t.Fatalf("viewport = %dx%d", m.viewport.Width, m.viewport.Height)
	}
	if !strings.Contains(m.View(), "時間計算量") {
		t.Fatal("sidebar missing after resize")
	}
}
